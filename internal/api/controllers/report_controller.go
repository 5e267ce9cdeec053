package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"canteen/internal/services"
	"canteen/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{reportService: reportService}
}

// DailyReport godoc
// @Summary Ledger counts for one date
// @Tags Admin
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reports/daily [get]
func (r *ReportController) DailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query param \"date\" is required")
		return
	}

	report, err := r.reportService.DailyReport(c.Request.Context(), date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Daily report fetched successfully")
}

// AdminStats godoc
// @Summary Today's headline numbers
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (r *ReportController) AdminStats(c *gin.Context) {
	stats, err := r.reportService.AdminStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}
