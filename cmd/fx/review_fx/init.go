package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"canteen/internal/repositories"
	"canteen/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo)
}
