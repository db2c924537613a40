package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/achalbajpai/proactively-backend/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ac *controllers.AuthController) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", ac.Signup)
	auth.Post("/verify-otp", ac.VerifyOTP)
	auth.Post("/login", ac.Login)
}
