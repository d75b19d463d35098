package models

import (
	"gorm.io/gorm"
)

type Tour struct {
	gorm.Model
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	GuideID          uint    `json:"guide_id"`
	Guide            User    `json:"guide,omitempty" gorm:"foreignKey:GuideID"`
	BasePrice        float64 `json:"base_price"`
	MaxPeople        int     `json:"max_people"`
	ExtraPersonPrice float64 `json:"extra_person_price"`
	Location         string  `json:"location"`
	Duration         string  `json:"duration"`
	ImageURL         string  `json:"image_url"`
	Rating           float64 `json:"rating"`
}
