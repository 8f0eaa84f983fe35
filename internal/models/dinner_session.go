package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session status values
const (
	SessionActive    = "active"
	SessionFinalized = "finalized"
	SessionCancelled = "cancelled"
)

// DinnerSession groups one round of voting. Finalizing stamps the current
// leader as winner; it does not lock the vote ledger.
type DinnerSession struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title              string     `json:"title" gorm:"not null"`
	Status             string     `json:"status" gorm:"not null;default:'active'"`
	WinnerRestaurantID *string    `json:"winner_restaurant_id,omitempty" gorm:"type:uuid"`
	FinalizedAt        *time.Time `json:"finalized_at,omitempty"`
	BookingTime        *time.Time `json:"booking_time,omitempty"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (DinnerSession) TableName() string {
	return "dinner_sessions"
}

func (s *DinnerSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
