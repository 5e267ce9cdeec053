package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"canteen/internal/models/request_models"
	"canteen/internal/services"
	"canteen/pkg/utils"
)

type MealController struct {
	mealService services.MealServiceInterface
}

func NewMealController(mealService services.MealServiceInterface) *MealController {
	return &MealController{mealService: mealService}
}

// PayMeal godoc
// @Summary Pay for a single meal
// @Description Records a one-off payment for (date, meal_type); rejects duplicates
// @Tags Meals
// @Accept json
// @Produce json
// @Param request body request_models.PayMealRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pay-meal [post]
func (m *MealController) PayMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.PayMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Fields \"date\" and \"meal_type\" are required")
		return
	}

	if err := m.mealService.PayMeal(c.Request.Context(), userID, req.Date, req.MealType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Paid successfully")
}

// BuySubscription godoc
// @Summary Buy a 30-day meal subscription
// @Tags Meals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /buy-subscription [post]
func (m *MealController) BuySubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sub, err := m.mealService.BuySubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"end_date": sub.EndDate}, "Subscription purchased")
}

// IssueMealForUser godoc
// @Summary Issue a meal to a student
// @Description Verifies entitlement, then records the hand-out exactly once.
// @Tags Meals
// @Accept json
// @Produce json
// @Param request body request_models.IssueMealForUserRequest true "Issuance payload"
// @Success 200 {object} utils.APIResponse "already issued"
// @Success 201 {object} utils.APIResponse "first issuance"
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cook/issue-meal-for-user [post]
func (m *MealController) IssueMealForUser(c *gin.Context) {
	var req request_models.IssueMealForUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Fields \"user_id\", \"meal_type\" and \"date\" are required")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	result, err := m.mealService.IssueMealForUser(c.Request.Context(), userID, req.Date, req.MealType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{
			"message": "Meal was already issued",
			"status":  "already_issued",
		})
		return
	}

	utils.RespondCreated(c, gin.H{"issued": result.Issued}, "Issued successfully")
}

// PaidStudents godoc
// @Summary Students entitled to a meal on a date
// @Tags Meals
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param meal_type query string true "Meal type"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /paid-students [get]
func (m *MealController) PaidStudents(c *gin.Context) {
	date := c.Query("date")
	mealType := c.Query("meal_type")
	if date == "" || mealType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query params \"date\" and \"meal_type\" are required")
		return
	}

	students, err := m.mealService.PaidStudents(c.Request.Context(), date, mealType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, students, "Paid students fetched successfully")
}
