package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
)

type PurchaseRequestRepository interface {
	Insert(ctx context.Context, req *db_models.PurchaseRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PurchaseRequest, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PurchaseRequest, error)
	ListAllWithCreator(ctx context.Context) ([]db_models.PurchaseRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.PurchaseStatus) error
}

type purchaseRequestRepository struct {
	db *gorm.DB
}

func NewPurchaseRequestRepository(db *gorm.DB) PurchaseRequestRepository {
	return &purchaseRequestRepository{db: db}
}

func (r *purchaseRequestRepository) Insert(ctx context.Context, req *db_models.PurchaseRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *purchaseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PurchaseRequest, error) {
	var req db_models.PurchaseRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *purchaseRequestRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PurchaseRequest, error) {
	var reqs []db_models.PurchaseRequest
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *purchaseRequestRepository) ListAllWithCreator(ctx context.Context) ([]db_models.PurchaseRequest, error) {
	var reqs []db_models.PurchaseRequest
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *purchaseRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.PurchaseStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PurchaseRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
