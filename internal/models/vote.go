package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote is the single active vote of one user. The unique index on UserID is
// what enforces the one-vote-per-user invariant; casting again upserts the
// same row instead of deleting and re-inserting.
type Vote struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"`
	UserName     string    `json:"user_name" gorm:"not null"`
	UserAvatar   string    `json:"user_avatar"`
	RestaurantID string    `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
