package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/db"
	"github.com/tourguideapp/backend/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	return database
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database := newTestDB(t)

	app := fiber.New()
	app.Get("/health", controllers.Health(database))
	routes.SetupAuthRoutes(app, controllers.NewAuthController(database))
	routes.SetupTourRoutes(app, controllers.NewTourController(database))
	routes.SetupTourRequestRoutes(app, controllers.NewTourRequestController(database))
	routes.SetupReviewRoutes(
		app,
		controllers.NewTourReviewController(database),
		controllers.NewGuideReviewController(database),
	)
	routes.SetupBusinessRoutes(app, controllers.NewBusinessController(database, nil))
	routes.SetupNotificationRoutes(app, controllers.NewNotificationController(database))

	return app, database
}

// doRequest performs a JSON request and decodes the response body into a map.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

// doRequestList is doRequest for endpoints returning a top-level JSON array.
func doRequestList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, app *fiber.App, name, email, userType string) (string, uint) {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":      name,
		"email":     email,
		"password":  "secret123",
		"user_type": userType,
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)

	token := body["token"].(string)
	user := body["user"].(map[string]interface{})
	return token, uint(user["id"].(float64))
}

// createTour creates a tour as the given guide and returns its id.
func createTour(t *testing.T, app *fiber.App, guideToken, title string, basePrice float64, maxPeople int) uint {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/tours", guideToken, fiber.Map{
		"title":              title,
		"description":        "A walk through the old town",
		"location":           "Lisbon",
		"duration":           "3h",
		"base_price":         basePrice,
		"max_people":         maxPeople,
		"extra_person_price": 25.0,
	})
	require.Equal(t, http.StatusCreated, status, "create tour: %v", body)

	tour := body["tour"].(map[string]interface{})
	return uint(tour["ID"].(float64))
}
