package services

import (
	"context"

	"github.com/google/uuid"

	"canteen/internal/models/db_models"
	"canteen/internal/models/request_models"
	"canteen/internal/models/response_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

type PurchaseServiceInterface interface {
	CreateRequest(ctx context.Context, creatorID uuid.UUID, req request_models.CreatePurchaseRequest) (*response_models.PurchaseRequestResponse, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]response_models.PurchaseRequestResponse, error)
	ListAll(ctx context.Context) ([]response_models.PurchaseRequestResponse, error)
	Review(ctx context.Context, id uuid.UUID, approved bool) error
}

type PurchaseService struct {
	purchaseRepo repositories.PurchaseRequestRepository
}

func NewPurchaseService(purchaseRepo repositories.PurchaseRequestRepository) PurchaseServiceInterface {
	return &PurchaseService{purchaseRepo: purchaseRepo}
}

func toPurchaseResponse(req db_models.PurchaseRequest, withCreator bool) response_models.PurchaseRequestResponse {
	resp := response_models.PurchaseRequestResponse{
		ID:          req.ID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}
	if withCreator {
		resp.CreatedByUsername = req.CreatedBy.Username
	}
	return resp
}

func (s *PurchaseService) CreateRequest(ctx context.Context, creatorID uuid.UUID, req request_models.CreatePurchaseRequest) (*response_models.PurchaseRequestResponse, error) {
	record := &db_models.PurchaseRequest{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Status:      db_models.PurchasePending,
		CreatedByID: creatorID,
	}

	if err := s.purchaseRepo.Insert(ctx, record); err != nil {
		return nil, err
	}

	resp := toPurchaseResponse(*record, false)
	return &resp, nil
}

func (s *PurchaseService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]response_models.PurchaseRequestResponse, error) {
	records, err := s.purchaseRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.PurchaseRequestResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toPurchaseResponse(r, false))
	}
	return out, nil
}

func (s *PurchaseService) ListAll(ctx context.Context) ([]response_models.PurchaseRequestResponse, error) {
	records, err := s.purchaseRepo.ListAllWithCreator(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.PurchaseRequestResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toPurchaseResponse(r, true))
	}
	return out, nil
}

// Review transitions a pending request to approved or rejected exactly once.
func (s *PurchaseService) Review(ctx context.Context, id uuid.UUID, approved bool) error {
	record, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return utils.ErrRequestNotFound
	}

	status := db_models.PurchaseApproved
	if !approved {
		status = db_models.PurchaseRejected
	}
	return s.purchaseRepo.UpdateStatus(ctx, id, status)
}
