package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourguideapp/backend/models"
)

func TestCreateTour_GuideOnly(t *testing.T) {
	app, _ := newTestApp(t)

	touristToken, _ := registerUser(t, app, "Tourist", "tourist@example.com", "tourist")

	status, _ := doRequest(t, app, http.MethodPost, "/api/tours", touristToken, fiber.Map{
		"title":       "Fake Tour",
		"description": "d",
		"location":    "l",
		"base_price":  50.0,
		"max_people":  2,
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCreateTour_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	guideToken, _ := registerUser(t, app, "Guide", "guide@example.com", "guide")

	status, _ := doRequest(t, app, http.MethodPost, "/api/tours", guideToken, fiber.Map{
		"title":      "No description",
		"location":   "l",
		"base_price": 50.0,
		"max_people": 2,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/tours", guideToken, fiber.Map{
		"title":       "Free tour",
		"description": "d",
		"location":    "l",
		"base_price":  0.0,
		"max_people":  2,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetMyTours(t *testing.T) {
	app, _ := newTestApp(t)

	guideToken, _ := registerUser(t, app, "Guide", "guide@example.com", "guide")
	otherGuideToken, _ := registerUser(t, app, "Other", "other@example.com", "guide")

	createTour(t, app, guideToken, "Old Town Walk", 100, 4)
	createTour(t, app, guideToken, "Harbour Cruise", 200, 10)
	createTour(t, app, otherGuideToken, "Wine Tasting", 80, 6)

	status, tours := doRequestList(t, app, http.MethodGet, "/api/tours/my-tours", guideToken)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, tours, 2)

	status, tours = doRequestList(t, app, http.MethodGet, "/api/tours/", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, tours, 3)
}

func TestGetTour_ReviewAggregate(t *testing.T) {
	app, _ := newTestApp(t)

	guideToken, _ := registerUser(t, app, "Guide", "guide@example.com", "guide")
	tourID := createTour(t, app, guideToken, "Old Town Walk", 100, 4)

	for i, rating := range []int{5, 3} {
		token, _ := registerUser(t, app, fmt.Sprintf("Tourist %d", i),
			fmt.Sprintf("tourist%d@example.com", i), "tourist")
		status, _ := doRequest(t, app, http.MethodPost, "/api/tour-reviews", token, fiber.Map{
			"tour_id": tourID,
			"rating":  rating,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/tours/%d", tourID), "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, body["average_rating"])
	assert.EqualValues(t, 2, body["review_count"])
}

func TestGetTour_ReviewAggregateFailure(t *testing.T) {
	app, database := newTestApp(t)

	guideToken, _ := registerUser(t, app, "Guide", "guide@example.com", "guide")
	tourID := createTour(t, app, guideToken, "Old Town Walk", 100, 4)

	// Break the aggregate query so the detail handler hits a storage error.
	require.NoError(t, database.Migrator().DropTable(&models.TourReview{}))

	status, body := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/tours/%d", tourID), "", nil)
	require.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to fetch tour", body["error"])
}

func TestGetTour_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/api/tours/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Connected", body["database"])
}
