package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrAlreadyResolved marks a decision attempted on a non-pending request.
// Callers use it to tell the guard apart from storage failures.
var ErrAlreadyResolved = errors.New("request already resolved")

type TourRequestStatus string

const (
	StatusPending   TourRequestStatus = "pending"
	StatusApproved  TourRequestStatus = "approved"
	StatusRejected  TourRequestStatus = "rejected"
	StatusCancelled TourRequestStatus = "cancelled"
)

type TourRequest struct {
	gorm.Model
	TourID          uint              `json:"tour_id"`
	Tour            Tour              `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	TouristID       uint              `json:"tourist_id"`
	Tourist         User              `json:"tourist,omitempty" gorm:"foreignKey:TouristID"`
	RequestDate     time.Time         `json:"request_date"`
	PeopleCount     int               `json:"people_count"`
	TotalPrice      float64           `json:"total_price"`
	SpecialRequests string            `json:"special_requests"`
	Status          TourRequestStatus `json:"status"`
}

func (r *TourRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// Resolve applies a guide decision. Only pending requests can be approved or
// rejected. Cancellation is a separate path and deliberately skips this guard:
// a tourist can withdraw a request the guide has already answered.
func (r *TourRequest) Resolve(tx *gorm.DB, newStatus TourRequestStatus) error {
	if newStatus != StatusApproved && newStatus != StatusRejected {
		return fmt.Errorf("invalid status %q", newStatus)
	}
	if r.Status != StatusPending {
		return fmt.Errorf("%w: request is already %s", ErrAlreadyResolved, r.Status)
	}

	r.Status = newStatus
	return tx.Save(r).Error
}

// Cancel overwrites any current status with cancelled.
func (r *TourRequest) Cancel(tx *gorm.DB) error {
	r.Status = StatusCancelled
	return tx.Save(r).Error
}
