package models

import (
	"time"
)

type UserType string

const (
	TypeTourist UserType = "tourist"
	TypeGuide   UserType = "guide"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	UserType     UserType      `json:"user_type"`
	Tours        []Tour        `json:"tours,omitempty" gorm:"foreignKey:GuideID"`
	TourRequests []TourRequest `json:"tour_requests,omitempty" gorm:"foreignKey:TouristID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AuthUser is the identity carried by a verified access token.
// Handlers read it from the request context instead of re-parsing claims.
type AuthUser struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	UserType UserType `json:"user_type"`
}

func (u AuthUser) IsGuide() bool {
	return u.UserType == TypeGuide
}
