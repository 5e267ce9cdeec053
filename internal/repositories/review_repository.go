package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	Insert(ctx context.Context, review *db_models.Review) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryInterface {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
