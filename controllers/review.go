package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/middleware"
	"github.com/tourguideapp/backend/models"
	"gorm.io/gorm"
)

type TourReviewController struct {
	DB *gorm.DB
}

func NewTourReviewController(db *gorm.DB) *TourReviewController {
	return &TourReviewController{DB: db}
}

// CreateTourReview adds a review for a tour, one per tourist. The pre-check
// answers sequential duplicates with a clean 400; the unique index catches the
// concurrent ones.
func (trc *TourReviewController) CreateTourReview(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	review := new(models.TourReview)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if review.TourID == 0 || review.Rating == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tour_id and rating are required",
		})
	}
	if !models.ValidRating(review.Rating) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	var tour models.Tour
	if err := trc.DB.First(&tour, review.TourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tour not found",
		})
	}

	review.TouristID = authUser.ID
	review.Tourist = models.User{}

	hasExisting, err := review.HasExistingReview(trc.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "You have already reviewed this tour",
		})
	}

	if err := trc.DB.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "You have already reviewed this tour",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  review,
	})
}

// GetTourReviews lists reviews for one tour, newest first. Public.
func (trc *TourReviewController) GetTourReviews(c *fiber.Ctx) error {
	tourID, err := c.ParamsInt("tourId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tour ID",
		})
	}

	var reviews []models.TourReview
	if err := trc.DB.Preload("Tourist", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name")
	}).Where("tour_id = ?", tourID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(reviews)
}

// GetMyTourReviews lists the caller's own tour reviews.
func (trc *TourReviewController) GetMyTourReviews(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var reviews []models.TourReview
	if err := trc.DB.Where("tourist_id = ?", authUser.ID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(reviews)
}

// UpdateTourReview edits the caller's own review. A review that exists but
// belongs to someone else reads as not found, matching the listing scope.
func (trc *TourReviewController) UpdateTourReview(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var input struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var review models.TourReview
	if err := trc.DB.Where("id = ? AND tourist_id = ?", reviewID, authUser.ID).
		First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	updates := map[string]interface{}{}
	if input.Rating != nil {
		if !models.ValidRating(*input.Rating) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Rating must be between 1 and 5",
			})
		}
		updates["rating"] = *input.Rating
	}
	if input.Comment != nil {
		updates["comment"] = *input.Comment
	}

	if len(updates) > 0 {
		if err := trc.DB.Model(&review).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update review",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully",
		"review":  review,
	})
}

type GuideReviewController struct {
	DB *gorm.DB
}

func NewGuideReviewController(db *gorm.DB) *GuideReviewController {
	return &GuideReviewController{DB: db}
}

// CreateGuideReview adds a review for a guide, one per tourist.
func (grc *GuideReviewController) CreateGuideReview(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	review := new(models.GuideReview)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if review.GuideID == 0 || review.Rating == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "guide_id and rating are required",
		})
	}
	if !models.ValidRating(review.Rating) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	var guide models.User
	if err := grc.DB.Where("id = ? AND user_type = ?", review.GuideID, models.TypeGuide).
		First(&guide).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Guide not found",
		})
	}

	review.TouristID = authUser.ID
	review.Tourist = models.User{}

	hasExisting, err := review.HasExistingReview(grc.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "You have already reviewed this guide",
		})
	}

	if err := grc.DB.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "You have already reviewed this guide",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  review,
	})
}

// GetGuideReviews lists reviews for one guide, newest first. Public.
func (grc *GuideReviewController) GetGuideReviews(c *fiber.Ctx) error {
	guideID, err := c.ParamsInt("guideId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid guide ID",
		})
	}

	var reviews []models.GuideReview
	if err := grc.DB.Preload("Tourist", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name")
	}).Where("guide_id = ?", guideID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(reviews)
}

// GetGuideAverageRating returns the review aggregate for one guide.
func (grc *GuideReviewController) GetGuideAverageRating(c *fiber.Ctx) error {
	guideID, err := c.ParamsInt("guideId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid guide ID",
		})
	}

	var stats struct {
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int64   `json:"review_count"`
	}
	if err := grc.DB.Model(&models.GuideReview{}).
		Where("guide_id = ?", guideID).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as review_count").
		Scan(&stats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch review stats",
		})
	}

	return c.JSON(fiber.Map{
		"average_rating": stats.AverageRating,
		"review_count":   stats.ReviewCount,
	})
}

// UpdateGuideReview edits the caller's own review. A review that exists but
// belongs to someone else reads as not found, matching the listing scope.
func (grc *GuideReviewController) UpdateGuideReview(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var input struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var review models.GuideReview
	if err := grc.DB.Where("id = ? AND tourist_id = ?", reviewID, authUser.ID).
		First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	updates := map[string]interface{}{}
	if input.Rating != nil {
		if !models.ValidRating(*input.Rating) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Rating must be between 1 and 5",
			})
		}
		updates["rating"] = *input.Rating
	}
	if input.Comment != nil {
		updates["comment"] = *input.Comment
	}

	if len(updates) > 0 {
		if err := grc.DB.Model(&review).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update review",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// GetMyGuideReviews lists the caller's own guide reviews.
func (grc *GuideReviewController) GetMyGuideReviews(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var reviews []models.GuideReview
	if err := grc.DB.Where("tourist_id = ?", authUser.ID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(reviews)
}
