package dto

import (
	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneratePlanRequest defines the data needed to generate a payoff plan.
type GeneratePlanRequest struct {
	PayoffDate string `json:"payoffDate" binding:"required,datetime=2006-01-02"`
}

// PayoffPlanResponse describes the outcome of a plan generation or
// recalculation. An InstallmentCount of zero means the plan was cleared
// (past payoff date, or no candidate dates remained).
type PayoffPlanResponse struct {
	DebtID           string          `json:"debtID"`
	DebtName         string          `json:"debtName"`
	PayoffDate       *string         `json:"payoffDate,omitempty"` // YYYY-MM-DD, nil when the plan was cleared
	InstallmentCount int             `json:"installmentCount"`
	MonthlyAmount    decimal.Decimal `json:"monthlyAmount"`
	TotalScheduled   decimal.Decimal `json:"totalScheduled"`
	Installments     []EntryResponse `json:"installments"`
}

// ToPayoffPlanResponse builds the response for a debt and its freshly
// written installment entries.
func ToPayoffPlanResponse(debt *domain.Debt, installments []domain.Entry) PayoffPlanResponse {
	resp := PayoffPlanResponse{
		DebtID:           debt.DebtID,
		DebtName:         debt.Name,
		InstallmentCount: len(installments),
		MonthlyAmount:    decimal.Zero,
		TotalScheduled:   decimal.Zero,
		Installments:     ToListEntryResponse(installments),
	}
	if debt.PayoffPlanDate != nil {
		s := debt.PayoffPlanDate.Format(DateLayout)
		resp.PayoffDate = &s
	}
	if len(installments) > 0 {
		resp.MonthlyAmount = installments[0].Amount
		for _, inst := range installments {
			resp.TotalScheduled = resp.TotalScheduled.Add(inst.Amount)
		}
	}
	return resp
}
