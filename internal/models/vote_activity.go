package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteActivity is one append-only entry of the activity feed. Rows are never
// updated or deleted; readers only ever see the most recent ten.
type VoteActivity struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID         string    `json:"user_id" gorm:"not null"`
	UserName       string    `json:"user_name" gorm:"not null"`
	UserAvatar     string    `json:"user_avatar"`
	Action         string    `json:"action" gorm:"not null"`
	RestaurantID   string    `json:"restaurant_id" gorm:"type:uuid;not null"`
	RestaurantName string    `json:"restaurant_name" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_vote_activities_created_at,sort:desc"`
}

func (VoteActivity) TableName() string {
	return "vote_activities"
}

func (a *VoteActivity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
