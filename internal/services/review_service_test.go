package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"canteen/internal/models/db_models"
	"canteen/internal/models/request_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

type fakeReviewRepo struct {
	reviews []*db_models.Review
}

func (r *fakeReviewRepo) Insert(ctx context.Context, review *db_models.Review) error {
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, review := range r.reviews {
		if review.UserID == userID {
			out = append(out, *review)
		}
	}
	return out, nil
}

var _ repositories.ReviewRepositoryInterface = (*fakeReviewRepo)(nil)

func TestAddReviewValidatesRating(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReviewRepo{}
	service := NewReviewService(repo)
	userID := uuid.New()

	for _, rating := range []int{0, 6, -1} {
		req := request_models.CreateReviewRequest{
			Date:     "2026-02-07",
			MealType: "lunch",
			Rating:   rating,
		}
		if _, err := service.AddReview(ctx, userID, req); !errors.Is(err, utils.ErrInvalidRating) {
			t.Errorf("rating %d: got %v, want ErrInvalidRating", rating, err)
		}
	}

	review, err := service.AddReview(ctx, userID, request_models.CreateReviewRequest{
		Date:     "2026-02-07",
		MealType: "lunch",
		Rating:   4,
		Comment:  "Good soup",
	})
	if err != nil {
		t.Fatalf("valid review failed: %v", err)
	}
	if review.Rating != 4 || review.UserID != userID {
		t.Errorf("unexpected review: %+v", review)
	}

	mine, err := service.ListByUser(ctx, userID)
	if err != nil || len(mine) != 1 {
		t.Fatalf("ListByUser: got %d, err %v", len(mine), err)
	}
}
