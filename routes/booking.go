package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/achalbajpai/proactively-backend/controllers"
	"github.com/achalbajpai/proactively-backend/middleware"
	"github.com/achalbajpai/proactively-backend/models"
)

// SetupBookingRoutes configures slot availability and booking routes
func SetupBookingRoutes(app *fiber.App, bc *controllers.BookingController, protect fiber.Handler) {
	bookings := app.Group("/api/bookings")

	bookings.Get("/slots", protect, bc.GetAvailableSlots)
	bookings.Post("/", protect, middleware.RequireRole(models.TypeUser), bc.CreateBooking)
	bookings.Get("/my", protect, middleware.RequireRole(models.TypeUser), bc.GetUserBookings)
	bookings.Get("/speaker", protect, middleware.RequireRole(models.TypeSpeaker), bc.GetSpeakerBookings)
}
