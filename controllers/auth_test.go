package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":      "Ana",
		"email":     "ana@example.com",
		"password":  "secret123",
		"user_type": "tourist",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "tourist", user["type"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Ana", "ana@example.com", "tourist")

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":      "Ana Again",
		"email":     "ana@example.com",
		"password":  "secret123",
		"user_type": "tourist",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", body["error"])
}

func TestRegister_InvalidUserType(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":      "Ana",
		"email":     "ana@example.com",
		"password":  "secret123",
		"user_type": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Ana", "ana@example.com", "tourist")

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProtectedRoutes_TokenHandling(t *testing.T) {
	app, _ := newTestApp(t)

	// No Authorization header at all.
	status, _ := doRequest(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Garbage token.
	status, _ = doRequest(t, app, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestGetProfile(t *testing.T) {
	app, _ := newTestApp(t)

	token, _ := registerUser(t, app, "Ana", "ana@example.com", "tourist")

	status, body := doRequest(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Empty(t, body["password"])
}
