package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/dto"
	"github.com/mpalomar/budgeteer/internal/middleware"
)

// debtHandler handles HTTP requests related to debts and their payoff plans.
type debtHandler struct {
	debtService   portssvc.DebtSvcFacade
	payoffService portssvc.PayoffSvcFacade
}

// RegisterDebtRoutes registers routes related to debts and payoff plans.
func RegisterDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, payoffService portssvc.PayoffSvcFacade) {
	h := &debtHandler{debtService: debtService, payoffService: payoffService}

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:debtID", h.getDebt)
		debts.PUT("/:debtID", h.updateDebt)
		debts.DELETE("/:debtID", h.deleteDebt)

		debts.PUT("/:debtID/payoff-plan", h.generatePlan)
		debts.POST("/:debtID/payoff-plan/recalculate", h.recalculatePlan)
		debts.DELETE("/:debtID/payoff-plan", h.removePlan)
	}
}

// createDebt godoc
// @Summary Create a new debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Debt with this name already exists"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List all debts
// @Tags debts
// @Produce  json
// @Success 200 {array} dto.DebtResponse
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list debts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Router /debts/{debtID} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to get debt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Description Edits a debt's name, balance, due day hint or minimum payment. Balance edits do not regenerate an existing payoff plan.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Param   debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to update debt"
// @Router /debts/{debtID} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), debtID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Removes a debt and every generated payoff installment for it
// @Tags debts
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Success 204 "Debt deleted"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Router /debts/{debtID} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	if err := h.debtService.DeleteDebt(c.Request.Context(), debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to delete debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debt"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// generatePlan godoc
// @Summary Generate a payoff plan for a debt
// @Description Replaces any existing generated schedule with equal monthly installments from today through the payoff date. A payoff date in the past clears the plan.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Param   plan body dto.GeneratePlanRequest true "Target payoff date"
// @Success 200 {object} dto.PayoffPlanResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to generate payoff plan"
// @Router /debts/{debtID}/payoff-plan [put]
func (h *debtHandler) generatePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for generatePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	payoffDate, err := time.ParseInLocation(dto.DateLayout, req.PayoffDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payoff date: " + err.Error()})
		return
	}

	installments, err := h.payoffService.GeneratePlan(c.Request.Context(), debtID, payoffDate, time.Now().UTC())
	if err != nil {
		h.respondPlanError(c, err, "Failed to generate payoff plan")
		return
	}

	h.respondPlan(c, debtID, installments)
}

// recalculatePlan godoc
// @Summary Recalculate a debt's payoff plan
// @Description Regenerates the schedule against the debt's live balance, keeping the existing target payoff date
// @Tags debts
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Success 200 {object} dto.PayoffPlanResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to recalculate payoff plan"
// @Router /debts/{debtID}/payoff-plan/recalculate [post]
func (h *debtHandler) recalculatePlan(c *gin.Context) {
	debtID := c.Param("debtID")

	installments, err := h.payoffService.RecalculatePlan(c.Request.Context(), debtID, time.Now().UTC())
	if err != nil {
		h.respondPlanError(c, err, "Failed to recalculate payoff plan")
		return
	}

	h.respondPlan(c, debtID, installments)
}

// removePlan godoc
// @Summary Remove a debt's payoff plan
// @Description Deletes the generated installments and clears the plan marker
// @Tags debts
// @Produce  json
// @Param   debtID path string true "Debt ID"
// @Success 204 "Plan removed"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to remove payoff plan"
// @Router /debts/{debtID}/payoff-plan [delete]
func (h *debtHandler) removePlan(c *gin.Context) {
	debtID := c.Param("debtID")

	if err := h.payoffService.RemovePlan(c.Request.Context(), debtID); err != nil {
		h.respondPlanError(c, err, "Failed to remove payoff plan")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondPlan re-reads the debt so the response reflects the marker state
// written by the payoff service.
func (h *debtHandler) respondPlan(c *gin.Context, debtID string, installments []domain.Entry) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		logger.Error("Plan written but re-reading the debt failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan result"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayoffPlanResponse(debt, installments))
}

func (h *debtHandler) respondPlanError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
