package purchase_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"canteen/internal/repositories"
	"canteen/internal/services"
)

var Module = fx.Provide(
	providePurchaseService, providePurchaseRepo)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRequestRepository {
	return repositories.NewPurchaseRequestRepository(db)
}

func providePurchaseService(purchaseRepo repositories.PurchaseRequestRepository) services.PurchaseServiceInterface {
	return services.NewPurchaseService(purchaseRepo)
}
