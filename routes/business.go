package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
)

// SetupBusinessRoutes configures the business directory routes. Reads are
// public, writes need authentication.
func SetupBusinessRoutes(app *fiber.App, bc *controllers.BusinessController) {
	business := app.Group("/api/businesses")
	business.Get("/", bc.GetAllBusinesses)
	business.Get("/:id", bc.GetBusiness)
	business.Post("/", middleware.Protected(), bc.CreateBusiness)
	business.Put("/:id", middleware.Protected(), bc.UpdateBusiness)
	business.Delete("/:id", middleware.Protected(), bc.DeleteBusiness)
}
