package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ac *controllers.AuthController) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), ac.GetProfile)
}
