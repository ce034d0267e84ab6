package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/dto"
	"github.com/mpalomar/budgeteer/internal/middleware"
)

// reportHandler handles HTTP requests for the reporting views.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := &reportHandler{reportService: reportService}

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlySummary)
		reports.GET("/projection", h.projection)
	}
}

// monthlySummary godoc
// @Summary Monthly budget summary
// @Description Aggregates one calendar month of ledger activity into income/expense totals and a per-category breakdown
// @Tags reports
// @Produce  json
// @Param   year query int true "Calendar year"
// @Param   month query int true "Calendar month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build monthly summary"
// @Router /reports/monthly [get]
func (h *reportHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthlySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for monthlySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportService.MonthlySummary(c.Request.Context(), params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to build monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// projection godoc
// @Summary Forward projection
// @Description Month-by-month view of scheduled income and expense with a running balance, starting from the current month
// @Tags reports
// @Produce  json
// @Param   months query int false "Number of months to project" default(12)
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build projection"
// @Router /reports/projection [get]
func (h *reportHandler) projection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for projection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	proj, err := h.reportService.Projection(c.Request.Context(), time.Now().UTC(), params.Months)
	if err != nil {
		logger.Error("Failed to build projection", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build projection"})
		return
	}

	c.JSON(http.StatusOK, proj)
}
