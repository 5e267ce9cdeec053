package meal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"canteen/internal/repositories"
	"canteen/internal/services"
)

var Module = fx.Provide(
	provideMealService,
	providePaymentRepo,
	provideSubscriptionRepo,
	provideIssuanceRepo)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideIssuanceRepo(db *gorm.DB) repositories.IssuanceRepository {
	return repositories.NewIssuanceRepository(db)
}

func provideMealService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	issuanceRepo repositories.IssuanceRepository,
) services.MealServiceInterface {
	return services.NewMealService(userRepo, paymentRepo, subscriptionRepo, issuanceRepo)
}
