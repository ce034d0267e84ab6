package dto

import (
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to create a new debt.
type CreateDebtRequest struct {
	Name           string           `json:"name" binding:"required"`
	CurrentBalance decimal.Decimal  `json:"currentBalance" binding:"required"`
	DueDayHint     string           `json:"dueDayHint"`     // Optional, e.g. "15th"
	MinimumPayment *decimal.Decimal `json:"minimumPayment"` // Optional
}

// UpdateDebtRequest defines the fields a debt edit may change.
// Use pointers to distinguish zero-value updates from fields not provided.
type UpdateDebtRequest struct {
	Name           *string          `json:"name"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	DueDayHint     *string          `json:"dueDayHint"`
	MinimumPayment *decimal.Decimal `json:"minimumPayment"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID         string           `json:"debtID"`
	Name           string           `json:"name"`
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	DueDayHint     string           `json:"dueDayHint"`
	MinimumPayment *decimal.Decimal `json:"minimumPayment,omitempty"`
	PayoffPlanDate *string          `json:"payoffPlanDate,omitempty"` // YYYY-MM-DD
	CreatedAt      time.Time        `json:"createdAt"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.Debt to a DebtResponse DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	resp := DebtResponse{
		DebtID:         d.DebtID,
		Name:           d.Name,
		CurrentBalance: d.CurrentBalance,
		DueDayHint:     d.DueDayHint,
		MinimumPayment: d.MinimumPayment,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
	if d.PayoffPlanDate != nil {
		s := d.PayoffPlanDate.Format(DateLayout)
		resp.PayoffPlanDate = &s
	}
	return resp
}

// ToListDebtResponse converts a slice of domain.Debt to response DTOs.
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}
