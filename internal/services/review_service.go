package services

import (
	"context"

	"github.com/google/uuid"

	"canteen/internal/models/db_models"
	"canteen/internal/models/request_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) AddReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, err
	}

	review := &db_models.Review{
		UserID:   userID,
		Date:     req.Date,
		MealType: db_models.MealType(req.MealType),
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}
