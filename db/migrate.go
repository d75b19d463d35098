package db

import (
	"github.com/tourguideapp/backend/models"
	"gorm.io/gorm"
)

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Tour{},
		&models.TourRequest{},
		&models.TourReview{},
		&models.GuideReview{},
		&models.Business{},
		&models.Notification{},
	)
}
