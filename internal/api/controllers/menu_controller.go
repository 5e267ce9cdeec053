package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"canteen/internal/models/request_models"
	"canteen/internal/models/response_models"
	"canteen/internal/services"
	"canteen/pkg/utils"
)

type MenuController struct {
	menuService     services.MenuServiceInterface
	purchaseService services.PurchaseServiceInterface
}

func NewMenuController(menuService services.MenuServiceInterface, purchaseService services.PurchaseServiceInterface) *MenuController {
	return &MenuController{
		menuService:     menuService,
		purchaseService: purchaseService,
	}
}

// WeeklyMenu godoc
// @Summary Weekly menu grouped by day and meal type
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /menu/weekly [get]
func (m *MenuController) WeeklyMenu(c *gin.Context) {
	menu, err := m.menuService.WeeklyMenu(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, menu, "Weekly menu fetched successfully")
}

// CookDashboard godoc
// @Summary Cook dashboard: all menu items plus own purchase requests
// @Tags Cook
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cook/dashboard [get]
func (m *MenuController) CookDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := m.menuService.ListAllItems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	requests, err := m.purchaseService.ListByCreator(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CookDashboard{
		MenuItems:        items,
		PurchaseRequests: requests,
	}, "Dashboard fetched successfully")
}

// DeductPortions godoc
// @Summary Hand out portions of a menu item
// @Description Decrements the remaining-portions counter atomically.
// @Tags Cook
// @Accept json
// @Produce json
// @Param request body request_models.DeductPortionsRequest true "Deduction payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cook/issue-meal [post]
func (m *MenuController) DeductPortions(c *gin.Context) {
	var req request_models.DeductPortionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Field \"meal_id\" is required")
		return
	}

	mealID, err := uuid.Parse(req.MealID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid meal ID")
		return
	}

	result, err := m.menuService.DeductPortions(c.Request.Context(), mealID, req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, result.Message)
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpsertMenuItemRequest true "Menu item payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/menu [post]
func (m *MenuController) CreateMenuItem(c *gin.Context) {
	var req request_models.UpsertMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := m.menuService.UpsertItem(c.Request.Context(), nil, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Menu item created successfully")
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body request_models.UpsertMenuItemRequest true "Menu item payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/menu/{id} [put]
func (m *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var req request_models.UpsertMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := m.menuService.UpsertItem(c.Request.Context(), &id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Menu item updated successfully")
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags Admin
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/menu/{id} [delete]
func (m *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	if err := m.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Menu item deleted successfully")
}
