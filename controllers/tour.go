package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/middleware"
	"github.com/tourguideapp/backend/models"
	"github.com/tourguideapp/backend/utils"
	"gorm.io/gorm"
)

type TourController struct {
	DB *gorm.DB
}

func NewTourController(db *gorm.DB) *TourController {
	return &TourController{DB: db}
}

// GetAllTours is the public catalog listing, newest first.
func (tc *TourController) GetAllTours(c *fiber.Ctx) error {
	var tours []models.Tour
	if err := tc.DB.Preload("Guide", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).Order("created_at desc").Find(&tours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tours",
			Error:   err.Error(),
		})
	}
	return c.JSON(tours)
}

// GetTour returns one tour with its review aggregate.
func (tc *TourController) GetTour(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tour ID",
		})
	}

	var tour models.Tour
	if err := tc.DB.Preload("Guide", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).First(&tour, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tour not found",
		})
	}

	var stats struct {
		AverageRating float64 `json:"average_rating"`
		ReviewCount   int64   `json:"review_count"`
	}
	if err := tc.DB.Model(&models.TourReview{}).
		Where("tour_id = ?", tour.ID).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as review_count").
		Scan(&stats).Error; err != nil {
		log.Printf("Error fetching review stats for tour %d: %v", tour.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tour",
		})
	}

	return c.JSON(fiber.Map{
		"tour":           tour,
		"average_rating": stats.AverageRating,
		"review_count":   stats.ReviewCount,
	})
}

// CreateTour registers a new tour owned by the authenticated guide.
func (tc *TourController) CreateTour(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	tour := new(models.Tour)
	if err := c.BodyParser(tour); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if tour.Title == "" || tour.Description == "" || tour.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if tour.BasePrice <= 0 || tour.MaxPeople < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "base_price must be positive and max_people at least 1",
		})
	}

	// Ownership comes from the token, never the body.
	tour.GuideID = authUser.ID
	tour.Guide = models.User{}

	if err := tc.DB.Create(tour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create tour",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tour created successfully",
		"tour":    tour,
	})
}

// GetMyTours lists the authenticated guide's own tours.
func (tc *TourController) GetMyTours(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var tours []models.Tour
	if err := tc.DB.Where("guide_id = ?", authUser.ID).
		Order("created_at desc").
		Find(&tours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tours",
			Error:   err.Error(),
		})
	}

	return c.JSON(tours)
}
