package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
)

// SetupTourRequestRoutes configures the booking request lifecycle routes
func SetupTourRequestRoutes(app *fiber.App, trc *controllers.TourRequestController) {
	request := app.Group("/api/tour-requests", middleware.Protected())
	request.Post("/", trc.CreateTourRequest)
	request.Get("/my-requests", trc.GetMyTourRequests)
	request.Patch("/:id/status", trc.UpdateTourRequestStatus)
	request.Patch("/:id/cancel", trc.CancelTourRequest)
}
