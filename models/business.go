package models

import (
	"gorm.io/gorm"
)

type BusinessType string

const (
	BusinessRestaurant BusinessType = "restaurant"
	BusinessStore      BusinessType = "store"
	BusinessHotel      BusinessType = "hotel"
	BusinessAttraction BusinessType = "attraction"
)

func ValidBusinessType(t BusinessType) bool {
	switch t {
	case BusinessRestaurant, BusinessStore, BusinessHotel, BusinessAttraction:
		return true
	}
	return false
}

type Business struct {
	gorm.Model
	Name        string       `json:"name"`
	Type        BusinessType `json:"type"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Rating      float64      `json:"rating"`
	ImageURL    string       `json:"image_url"`
	IsVerified  bool         `json:"is_verified" gorm:"default:false"`
}
