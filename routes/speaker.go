package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/achalbajpai/proactively-backend/controllers"
	"github.com/achalbajpai/proactively-backend/middleware"
	"github.com/achalbajpai/proactively-backend/models"
)

// SetupSpeakerRoutes configures speaker profile related routes
func SetupSpeakerRoutes(app *fiber.App, sc *controllers.SpeakerController, protect fiber.Handler) {
	speakers := app.Group("/api/speakers")

	// Public listing and detail
	speakers.Get("/", sc.ListSpeakers)
	speakers.Get("/:id", sc.GetSpeaker)

	// Speaker-only profile management
	speakers.Post("/profile", protect, middleware.RequireRole(models.TypeSpeaker), sc.CreateProfile)
	speakers.Put("/profile", protect, middleware.RequireRole(models.TypeSpeaker), sc.UpdateProfile)
	speakers.Post("/profile/photo", protect, middleware.RequireRole(models.TypeSpeaker), sc.UploadPhoto)
}
