package dto

import (
	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlySummaryParams defines query parameters for the monthly view.
type MonthlySummaryParams struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ProjectionParams defines query parameters for the forward projection.
type ProjectionParams struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=60"`
}

// CategoryTotalResponse is one category line in the monthly summary.
type CategoryTotalResponse struct {
	Kind     domain.EntryKind `json:"kind"`
	Category string           `json:"category"`
	Total    decimal.Decimal  `json:"total"`
}

// MonthlySummaryResponse aggregates one calendar month of ledger activity.
type MonthlySummaryResponse struct {
	Year         int                     `json:"year"`
	Month        int                     `json:"month"`
	TotalIncome  decimal.Decimal         `json:"totalIncome"`
	TotalExpense decimal.Decimal         `json:"totalExpense"`
	Net          decimal.Decimal         `json:"net"`
	Categories   []CategoryTotalResponse `json:"categories"`
}

// ProjectionMonthResponse is one month in the forward projection.
type ProjectionMonthResponse struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Net            decimal.Decimal `json:"net"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// ProjectionResponse is the month-by-month forward view.
type ProjectionResponse struct {
	Months []ProjectionMonthResponse `json:"months"`
}
