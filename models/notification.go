package models

import (
	"gorm.io/gorm"
)

// Notification types emitted by the tour request lifecycle.
const (
	NotifTourRequest          = "tour_request"
	NotifTourRequestStatus    = "tour_request_status"
	NotifTourRequestCancelled = "tour_request_cancelled"
)

type Notification struct {
	gorm.Model
	UserID      uint   `json:"user_id"`
	User        User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
	RelatedID   uint   `json:"related_id"`
	RelatedType string `json:"related_type"`
}
