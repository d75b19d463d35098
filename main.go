package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/tourguideapp/backend/controllers"
	"github.com/tourguideapp/backend/cron"
	"github.com/tourguideapp/backend/db"
	"github.com/tourguideapp/backend/redis"
	"github.com/tourguideapp/backend/routes"
)

func main() {
	database, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	cache, err := redis.NewClient()
	if err != nil {
		log.Println("Warning: Redis unavailable, business cache disabled:", err)
		cache = nil
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", controllers.Health(database))

	routes.SetupAuthRoutes(app, controllers.NewAuthController(database))
	routes.SetupTourRoutes(app, controllers.NewTourController(database))
	routes.SetupTourRequestRoutes(app, controllers.NewTourRequestController(database))
	routes.SetupReviewRoutes(
		app,
		controllers.NewTourReviewController(database),
		controllers.NewGuideReviewController(database),
	)
	routes.SetupBusinessRoutes(app, controllers.NewBusinessController(database, cache))
	routes.SetupNotificationRoutes(app, controllers.NewNotificationController(database))

	reminders := cron.StartReminderJobs(database)
	defer reminders.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
