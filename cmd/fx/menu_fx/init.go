package menu_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"canteen/internal/repositories"
	"canteen/internal/services"
)

var Module = fx.Provide(
	provideMenuService, provideMenuRepo)

func provideMenuRepo(db *gorm.DB) repositories.MenuRepository {
	return repositories.NewMenuRepository(db)
}

func provideMenuService(menuRepo repositories.MenuRepository) services.MenuServiceInterface {
	return services.NewMenuService(menuRepo)
}
