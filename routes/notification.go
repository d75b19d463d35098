package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/middleware"
)

// SetupNotificationRoutes configures the notification inbox routes
func SetupNotificationRoutes(app *fiber.App, nc *controllers.NotificationController) {
	notification := app.Group("/api/notifications", middleware.Protected())
	notification.Get("/", nc.GetMyNotifications)
	notification.Get("/unread-count", nc.GetUnreadCount)
	notification.Patch("/mark-all-read", nc.MarkAllAsRead)
	notification.Patch("/:id/read", nc.MarkAsRead)
}
