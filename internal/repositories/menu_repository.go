package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type MenuRepository interface {
	Insert(ctx context.Context, item *db_models.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.MenuItem, error)
	ListByDayAndMealType(ctx context.Context, day int, mealType db_models.MealType) ([]db_models.MenuItem, error)
	ListAll(ctx context.Context) ([]db_models.MenuItem, error)
	Update(ctx context.Context, item *db_models.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeductPortions(ctx context.Context, id uuid.UUID, quantity uint) (bool, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Insert(ctx context.Context, item *db_models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.MenuItem, error) {
	var item db_models.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListByDayAndMealType(ctx context.Context, day int, mealType db_models.MealType) ([]db_models.MenuItem, error) {
	var items []db_models.MenuItem
	err := r.db.WithContext(ctx).
		Where("day_of_week = ? AND meal_type = ?", day, mealType).
		Find(&items).Error
	return items, err
}

func (r *menuRepository) ListAll(ctx context.Context) ([]db_models.MenuItem, error) {
	var items []db_models.MenuItem
	err := r.db.WithContext(ctx).
		Order("day_of_week ASC, meal_type ASC").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(ctx context.Context, item *db_models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.MenuItem{}, "id = ?", id).Error
}

// DeductPortions subtracts quantity in a single conditional UPDATE so two
// concurrent deductions cannot over-subtract. Returns false when the item
// had fewer portions than requested.
func (r *menuRepository) DeductPortions(ctx context.Context, id uuid.UUID, quantity uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.MenuItem{}).
		Where("id = ? AND available_quantity >= ?", id, quantity).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
