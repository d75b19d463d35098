package models

import (
	"gorm.io/gorm"
)

// TourReview is a tourist's rating of a tour. The composite unique index keeps
// one review per (tour, tourist) even when two submissions race past the
// controller's pre-check.
type TourReview struct {
	gorm.Model
	TourID    uint   `json:"tour_id" gorm:"uniqueIndex:idx_tour_reviews_tour_tourist"`
	TouristID uint   `json:"tourist_id" gorm:"uniqueIndex:idx_tour_reviews_tour_tourist"`
	Tourist   User   `json:"tourist,omitempty" gorm:"foreignKey:TouristID"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// HasExistingReview reports whether the tourist already reviewed this tour.
func (r *TourReview) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&TourReview{}).
		Where("tour_id = ? AND tourist_id = ?", r.TourID, r.TouristID).
		Count(&count).Error

	return count > 0, err
}

// GuideReview is a tourist's rating of a guide, independent of any one tour.
type GuideReview struct {
	gorm.Model
	GuideID   uint   `json:"guide_id" gorm:"uniqueIndex:idx_guide_reviews_guide_tourist"`
	TouristID uint   `json:"tourist_id" gorm:"uniqueIndex:idx_guide_reviews_guide_tourist"`
	Tourist   User   `json:"tourist,omitempty" gorm:"foreignKey:TouristID"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (r *GuideReview) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&GuideReview{}).
		Where("guide_id = ? AND tourist_id = ?", r.GuideID, r.TouristID).
		Count(&count).Error

	return count > 0, err
}

// ValidRating checks the 1-5 integer rating bound shared by both review kinds.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
