package repository

import (
	"context"
	"time"

	"biteengine/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.DinnerSession) error
	GetByID(ctx context.Context, id string) (*models.DinnerSession, error)
	GetAll(ctx context.Context) ([]models.DinnerSession, error)
	Finalize(ctx context.Context, id, winnerRestaurantID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.DinnerSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*models.DinnerSession, error) {
	var session models.DinnerSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetAll(ctx context.Context) ([]models.DinnerSession, error) {
	var sessions []models.DinnerSession
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

// Finalize stamps the winner on an active session
func (r *sessionRepository) Finalize(ctx context.Context, id, winnerRestaurantID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.DinnerSession{}).
		Where("id = ? AND status = ?", id, models.SessionActive).
		Updates(map[string]interface{}{
			"status":               models.SessionFinalized,
			"winner_restaurant_id": winnerRestaurantID,
			"finalized_at":         &now,
		}).Error
}
