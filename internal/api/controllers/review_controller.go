package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canteen/internal/models/request_models"
	"canteen/internal/services"
	"canteen/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Create godoc
// @Summary Leave a meal review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.AddReview(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review added successfully")
}

// ListMine godoc
// @Summary Current user's reviews, newest first
// @Tags Reviews
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/reviews [get]
func (r *ReviewController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviews, err := r.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
