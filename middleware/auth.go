package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/tourguideapp/backend/models"
	"github.com/tourguideapp/backend/utils"
)

const authUserKey = "authUser"

// Protected verifies the bearer token and stores the caller's identity in the
// request context. A request without the Authorization header gets 401, a
// malformed or expired token gets 403.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(utils.JWTSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "No authentication token",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			user, err := userFromClaims(claims)
			if err != nil {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			c.Locals(authUserKey, user)
			return c.Next()
		},
	})
}

// RequireUserType gates a route to one user type. Must run after Protected.
func RequireUserType(userType models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		if user.UserType != userType {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("Access restricted to %s accounts", userType),
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the identity set by Protected.
func CurrentUser(c *fiber.Ctx) (models.AuthUser, bool) {
	user, ok := c.Locals(authUserKey).(models.AuthUser)
	return user, ok
}

func userFromClaims(claims jwt.MapClaims) (models.AuthUser, error) {
	var user models.AuthUser

	id, ok := claims["id"].(float64)
	if !ok {
		return user, fmt.Errorf("no user ID in claims")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return user, fmt.Errorf("no email in claims")
	}
	userType, ok := claims["user_type"].(string)
	if !ok {
		return user, fmt.Errorf("no user type in claims")
	}

	user.ID = uint(id)
	user.Email = email
	user.UserType = models.UserType(userType)
	return user, nil
}

func jwtError(c *fiber.Ctx, err error) error {
	if c.Get("Authorization") == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Access token required",
		})
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Invalid or expired token",
	})
}
