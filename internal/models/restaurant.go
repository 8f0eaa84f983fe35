package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is one catalog entry available for voting. Rows are created only
// by the ingestion pipeline; the unique index on name is the dedup key.
type Restaurant struct {
	ID          string   `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string   `json:"name" gorm:"uniqueIndex;not null"`
	Cuisine     string   `json:"cuisine" gorm:"not null"`
	Image       string   `json:"image" gorm:"default:'/placeholder.svg'"`
	Rating      float64  `json:"rating" gorm:"type:decimal(2,1);not null"`
	Distance    string   `json:"distance"`
	PriceRange  string   `json:"price_range"`
	Badges      []string `json:"badges" gorm:"type:jsonb;serializer:json"`
	Dietary     []string `json:"dietary" gorm:"type:jsonb;serializer:json"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
