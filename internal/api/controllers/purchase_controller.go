package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"canteen/internal/models/request_models"
	"canteen/internal/services"
	"canteen/pkg/utils"
)

type PurchaseController struct {
	purchaseService services.PurchaseServiceInterface
}

func NewPurchaseController(purchaseService services.PurchaseServiceInterface) *PurchaseController {
	return &PurchaseController{purchaseService: purchaseService}
}

// Create godoc
// @Summary Create a purchase request
// @Tags Cook
// @Accept json
// @Produce json
// @Param request body request_models.CreatePurchaseRequest true "Purchase request payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cook/purchase-requests [post]
func (p *PurchaseController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.purchaseService.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Purchase request created")
}

// ListAll godoc
// @Summary All purchase requests with creator names
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/purchase-requests [get]
func (p *PurchaseController) ListAll(c *gin.Context) {
	requests, err := p.purchaseService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Purchase requests fetched successfully")
}

// Review godoc
// @Summary Approve or reject a purchase request
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Purchase request ID"
// @Param request body request_models.ReviewPurchaseRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/approve-request/{id} [post]
func (p *PurchaseController) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req request_models.ReviewPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Missing flag means approval, per the admin UI contract.
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	if err := p.purchaseService.Review(c.Request.Context(), id, approved); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated")
}
