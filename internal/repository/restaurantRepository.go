package repository

import (
	"context"

	"biteengine/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository interface {
	CreateBatch(ctx context.Context, restaurants []*models.Restaurant) error
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	GetNames(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// CreateBatch inserts a batch of catalog entries in one statement. The unique
// index on name plus DO NOTHING keeps a concurrent batch from double-inserting
// a name the pre-filter snapshot missed.
func (r *restaurantRepository) CreateBatch(ctx context.Context, restaurants []*models.Restaurant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(restaurants).Error
}

// GetAll retrieves the whole catalog ordered by rating descending
func (r *restaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetNames returns every catalog name, the dedup snapshot for ingestion
func (r *restaurantRepository) GetNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Pluck("name", &names).Error
	return names, err
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error
	return count, err
}
