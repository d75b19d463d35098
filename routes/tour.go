package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
	"github.com/tourguideapp/backend/models"
)

// SetupTourRoutes configures all tour catalog routes
func SetupTourRoutes(app *fiber.App, tc *controllers.TourController) {
	tour := app.Group("/api/tours")
	tour.Get("/", tc.GetAllTours)
	tour.Get("/my-tours", middleware.Protected(), middleware.RequireUserType(models.TypeGuide), tc.GetMyTours)
	tour.Get("/:id", tc.GetTour)
	tour.Post("/", middleware.Protected(), middleware.RequireUserType(models.TypeGuide), tc.CreateTour)
}
