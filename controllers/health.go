package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Health reports liveness plus database connectivity.
func Health(database *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := database.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":    "ERROR",
				"database":  "Disconnected",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Tour Guide API is running",
			"database":  "Connected",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
