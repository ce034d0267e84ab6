package services

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/dto"
)

// ReportSvcFacade defines the read-only reporting views.
type ReportSvcFacade interface {
	// MonthlySummary aggregates one calendar month of ledger activity into
	// income/expense totals and a per-category breakdown.
	MonthlySummary(ctx context.Context, year int, month time.Month) (*dto.MonthlySummaryResponse, error)

	// Projection produces a forward month-by-month view of scheduled
	// income and expense with a running balance, starting from the month
	// containing the given date.
	Projection(ctx context.Context, from time.Time, months int) (*dto.ProjectionResponse, error)
}
