package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.MealPayment) error
	Exists(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (bool, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	UserIDsByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) ([]uuid.UUID, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Insert relies on the (user, date, meal_type) unique index; a duplicate
// surfaces as gorm.ErrDuplicatedKey for the service to translate.
func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.MealPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) Exists(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MealPayment{}).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		Count(&n).Error
	return n > 0, err
}

func (r *paymentRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MealPayment{}).
		Where("date = ?", date).
		Count(&n).Error
	return n, err
}

func (r *paymentRepository) UserIDsByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.MealPayment{}).
		Where("date = ? AND meal_type = ?", date, mealType).
		Pluck("user_id", &ids).Error
	return ids, err
}
