package repository

import (
	"context"

	"biteengine/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.VoteActivity) error
	GetRecent(ctx context.Context, limit int) ([]models.VoteActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends one feed entry. Entries are never updated or deleted.
func (r *activityRepository) Create(ctx context.Context, activity *models.VoteActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// GetRecent retrieves the newest entries first
func (r *activityRepository) GetRecent(ctx context.Context, limit int) ([]models.VoteActivity, error) {
	var activities []models.VoteActivity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
