package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/middleware"
	"github.com/tourguideapp/backend/models"
	"gorm.io/gorm"
)

type TourRequestController struct {
	DB *gorm.DB
}

func NewTourRequestController(db *gorm.DB) *TourRequestController {
	return &TourRequestController{DB: db}
}

// CreateTourRequest opens a pending booking request and notifies the guide who
// owns the tour. Request and notification commit in one transaction so a crash
// cannot leave an un-notified request behind.
func (trc *TourRequestController) CreateTourRequest(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var input struct {
		TourID          uint    `json:"tour_id"`
		RequestDate     string  `json:"request_date"`
		PeopleCount     int     `json:"people_count"`
		TotalPrice      float64 `json:"total_price"`
		SpecialRequests string  `json:"special_requests"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.TourID == 0 || input.RequestDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tour_id and request_date are required",
		})
	}
	if input.PeopleCount < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "people_count must be at least 1",
		})
	}

	requestDate, err := parseRequestDate(input.RequestDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request_date must be YYYY-MM-DD or RFC3339",
		})
	}

	var tour models.Tour
	if err := trc.DB.First(&tour, input.TourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tour not found",
		})
	}

	request := models.TourRequest{
		TourID:          tour.ID,
		TouristID:       authUser.ID,
		RequestDate:     requestDate,
		PeopleCount:     input.PeopleCount,
		TotalPrice:      input.TotalPrice,
		SpecialRequests: input.SpecialRequests,
	}

	err = trc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:      tour.GuideID,
			Title:       "New tour request",
			Message:     fmt.Sprintf("You received a new request for the tour %q", tour.Title),
			Type:        models.NotifTourRequest,
			RelatedID:   request.ID,
			RelatedType: "tour_request",
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error creating tour request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create tour request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Tour request created successfully",
		"tourRequest": request,
	})
}

// GetMyTourRequests branches on the caller's type: tourists see requests they
// submitted, guides see requests against tours they own.
func (trc *TourRequestController) GetMyTourRequests(c *fiber.Ctx) error {
	authUser, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	query := trc.DB.
		Preload("Tour").
		Preload("Tourist", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Order("tour_requests.created_at desc")

	if authUser.IsGuide() {
		query = query.
			Joins("JOIN tours ON tours.id = tour_requests.tour_id").
			Where("tours.guide_id = ?", authUser.ID)
	} else {
		query = query.Where("tour_requests.tourist_id = ?", authUser.ID)
	}

	var requests []models.TourRequest
	if err := query.Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tour requests",
		})
	}

	return c.JSON(requests)
}

// UpdateTourRequestStatus applies a guide's approve/reject decision and
// notifies the tourist, all in one transaction.
func (trc *TourRequestController) UpdateTourRequestStatus(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
		})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	newStatus := models.TourRequestStatus(input.Status)
	if newStatus != models.StatusApproved && newStatus != models.StatusRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be 'approved' or 'rejected'",
		})
	}

	var request models.TourRequest
	if err := trc.DB.First(&request, requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tour request not found",
		})
	}

	outcome := "approved"
	if newStatus == models.StatusRejected {
		outcome = "rejected"
	}

	err = trc.DB.Transaction(func(tx *gorm.DB) error {
		if err := request.Resolve(tx, newStatus); err != nil {
			return err
		}

		notification := models.Notification{
			UserID:      request.TouristID,
			Title:       fmt.Sprintf("Request %s", outcome),
			Message:     fmt.Sprintf("Your tour request was %s by the guide", outcome),
			Type:        models.NotifTourRequestStatus,
			RelatedID:   request.ID,
			RelatedType: "tour_request",
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrAlreadyResolved) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error updating tour request %d status: %v", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update tour request status",
		})
	}

	return c.JSON(fiber.Map{
		"message":     fmt.Sprintf("Request %s successfully", outcome),
		"tourRequest": request,
	})
}

// CancelTourRequest sets the request to cancelled whatever its current status
// and notifies the guide.
func (trc *TourRequestController) CancelTourRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
		})
	}

	var request models.TourRequest
	if err := trc.DB.Preload("Tour").First(&request, requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tour request not found",
		})
	}

	err = trc.DB.Transaction(func(tx *gorm.DB) error {
		if err := request.Cancel(tx); err != nil {
			return err
		}

		notification := models.Notification{
			UserID:      request.Tour.GuideID,
			Title:       "Request cancelled",
			Message:     fmt.Sprintf("A request for your tour %q was cancelled", request.Tour.Title),
			Type:        models.NotifTourRequestCancelled,
			RelatedID:   request.ID,
			RelatedType: "tour_request",
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error cancelling tour request %d: %v", requestID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to cancel tour request",
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Request cancelled successfully",
		"tourRequest": request,
	})
}

func parseRequestDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
