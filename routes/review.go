package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
)

// SetupReviewRoutes configures tour and guide review routes
func SetupReviewRoutes(app *fiber.App, trc *controllers.TourReviewController, grc *controllers.GuideReviewController) {
	tourReview := app.Group("/api/tour-reviews")
	tourReview.Get("/tour/:tourId", trc.GetTourReviews)
	tourReview.Get("/my-reviews", middleware.Protected(), trc.GetMyTourReviews)
	tourReview.Post("/", middleware.Protected(), trc.CreateTourReview)
	tourReview.Put("/:id", middleware.Protected(), trc.UpdateTourReview)

	guideReview := app.Group("/api/guide-reviews")
	guideReview.Get("/guide/:guideId/average", grc.GetGuideAverageRating)
	guideReview.Get("/guide/:guideId", grc.GetGuideReviews)
	guideReview.Get("/my-reviews", middleware.Protected(), grc.GetMyGuideReviews)
	guideReview.Post("/", middleware.Protected(), grc.CreateGuideReview)
	guideReview.Put("/:id", middleware.Protected(), grc.UpdateGuideReview)
}
