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

type MenuServiceInterface interface {
	WeeklyMenu(ctx context.Context) (response_models.WeeklyMenu, error)
	ListAllItems(ctx context.Context) ([]response_models.MenuItemResponse, error)
	UpsertItem(ctx context.Context, id *uuid.UUID, req request_models.UpsertMenuItemRequest) (*response_models.MenuItemResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeductPortions(ctx context.Context, id uuid.UUID, quantity uint) (*response_models.DeductPortionsResponse, error)
}

type MenuService struct {
	menuRepo repositories.MenuRepository
}

func NewMenuService(menuRepo repositories.MenuRepository) MenuServiceInterface {
	return &MenuService{menuRepo: menuRepo}
}

func toMenuItemResponse(item db_models.MenuItem) response_models.MenuItemResponse {
	return response_models.MenuItemResponse{
		ID:                item.ID,
		DayOfWeek:         item.DayOfWeek,
		MealType:          string(item.MealType),
		Dishes:            item.Dishes,
		Price:             item.Price,
		AvailableQuantity: item.AvailableQuantity,
	}
}

func (s *MenuService) WeeklyMenu(ctx context.Context) (response_models.WeeklyMenu, error) {
	menu := make(response_models.WeeklyMenu, 7)

	for day := 1; day <= 7; day++ {
		breakfast, err := s.menuRepo.ListByDayAndMealType(ctx, day, db_models.MealBreakfast)
		if err != nil {
			return nil, err
		}
		lunch, err := s.menuRepo.ListByDayAndMealType(ctx, day, db_models.MealLunch)
		if err != nil {
			return nil, err
		}

		dayMenu := response_models.DayMenu{
			Breakfast: make([]response_models.MenuItemResponse, 0, len(breakfast)),
			Lunch:     make([]response_models.MenuItemResponse, 0, len(lunch)),
		}
		for _, item := range breakfast {
			dayMenu.Breakfast = append(dayMenu.Breakfast, toMenuItemResponse(item))
		}
		for _, item := range lunch {
			dayMenu.Lunch = append(dayMenu.Lunch, toMenuItemResponse(item))
		}
		menu[day] = dayMenu
	}

	return menu, nil
}

func (s *MenuService) ListAllItems(ctx context.Context) ([]response_models.MenuItemResponse, error) {
	items, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toMenuItemResponse(item))
	}
	return out, nil
}

func (s *MenuService) UpsertItem(ctx context.Context, id *uuid.UUID, req request_models.UpsertMenuItemRequest) (*response_models.MenuItemResponse, error) {
	item := &db_models.MenuItem{
		DayOfWeek:         req.DayOfWeek,
		MealType:          db_models.MealType(req.MealType),
		Dishes:            req.Dishes,
		Price:             req.Price,
		AvailableQuantity: req.AvailableQuantity,
	}

	if id == nil {
		if err := s.menuRepo.Insert(ctx, item); err != nil {
			return nil, err
		}
	} else {
		existing, err := s.menuRepo.FindByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, utils.ErrMenuItemNotFound
		}
		existing.DayOfWeek = req.DayOfWeek
		existing.MealType = db_models.MealType(req.MealType)
		existing.Dishes = req.Dishes
		existing.Price = req.Price
		existing.AvailableQuantity = req.AvailableQuantity
		if err := s.menuRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		item = existing
	}

	resp := toMenuItemResponse(*item)
	return &resp, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	existing, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.ErrMenuItemNotFound
	}
	return s.menuRepo.Delete(ctx, id)
}

// DeductPortions takes physical portions off a menu item. The repository
// runs the decrement as one conditional UPDATE, so over-subtracting under
// concurrent requests is not possible.
func (s *MenuService) DeductPortions(ctx context.Context, id uuid.UUID, quantity uint) (*response_models.DeductPortionsResponse, error) {
	if quantity == 0 {
		quantity = 1
	}

	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrMenuItemNotFound
	}

	ok, err := s.menuRepo.DeductPortions(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, utils.ErrInsufficientQuantity
	}

	updated, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &response_models.DeductPortionsResponse{Message: "Issued successfully"}
	if updated != nil {
		resp.NewQuantity = updated.AvailableQuantity
	}
	return resp, nil
}
