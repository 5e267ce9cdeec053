package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type SubscriptionRepository interface {
	Insert(ctx context.Context, sub *db_models.Subscription) error
	ExistsCovering(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	CountCovering(ctx context.Context, date string) (int64, error)
	UserIDsCovering(ctx context.Context, date string) ([]uuid.UUID, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// Window bounds are inclusive on both ends.
func (r *subscriptionRepository) ExistsCovering(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, date, date).
		Count(&n).Error
	return n > 0, err
}

func (r *subscriptionRepository) CountCovering(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Count(&n).Error
	return n, err
}

func (r *subscriptionRepository) UserIDsCovering(ctx context.Context, date string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Pluck("user_id", &ids).Error
	return ids, err
}
