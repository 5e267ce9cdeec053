package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type IssuanceRepository interface {
	Insert(ctx context.Context, issued *db_models.MealIssued) error
	FindByTriple(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (*db_models.MealIssued, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	CountByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) (int64, error)
	CountDistinctUsersByDate(ctx context.Context, date string) (int64, error)
}

type issuanceRepository struct {
	db *gorm.DB
}

func NewIssuanceRepository(db *gorm.DB) IssuanceRepository {
	return &issuanceRepository{db: db}
}

// Insert is the at-most-once guard: the composite unique index rejects a
// second row for the same (user, date, meal_type) with gorm.ErrDuplicatedKey.
func (r *issuanceRepository) Insert(ctx context.Context, issued *db_models.MealIssued) error {
	return r.db.WithContext(ctx).Create(issued).Error
}

func (r *issuanceRepository) FindByTriple(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (*db_models.MealIssued, error) {
	var issued db_models.MealIssued
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		First(&issued).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &issued, nil
}

func (r *issuanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MealIssued{}).
		Where("date = ?", date).
		Count(&n).Error
	return n, err
}

func (r *issuanceRepository) CountByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MealIssued{}).
		Where("date = ? AND meal_type = ?", date, mealType).
		Count(&n).Error
	return n, err
}

func (r *issuanceRepository) CountDistinctUsersByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MealIssued{}).
		Where("date = ?", date).
		Distinct("user_id").
		Count(&n).Error
	return n, err
}
