package repository

import (
	"context"

	"biteengine/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
	GetByUser(ctx context.Context, userID string) (*models.Vote, error)
	DeleteByUser(ctx context.Context, userID string) error
	CountByRestaurant(ctx context.Context, restaurantID string) (int64, error)
	CountsByRestaurant(ctx context.Context) (map[string]int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Upsert writes the user's vote in one atomic statement against the unique
// index on user_id. Casting again replaces the previous target, so exactly one
// row per user exists at any time.
func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_name", "user_avatar", "restaurant_id", "created_at",
			}),
		}).
		Create(vote).Error
}

// GetByUser retrieves the user's current vote, if any
func (r *voteRepository) GetByUser(ctx context.Context, userID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// DeleteByUser removes the user's vote. Deleting a non-existent vote is a
// no-op, not an error, so retraction stays idempotent.
func (r *voteRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Vote{}).Error
}

func (r *voteRepository) CountByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}

// CountsByRestaurant returns the per-restaurant tallies in one GROUP BY, always
// reflecting the ledger's current truth rather than a stored counter.
func (r *voteRepository) CountsByRestaurant(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		RestaurantID string
		Count        int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("restaurant_id, COUNT(*) as count").
		Group("restaurant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RestaurantID] = row.Count
	}
	return counts, nil
}

func (r *voteRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Count(&count).Error
	return count, err
}
