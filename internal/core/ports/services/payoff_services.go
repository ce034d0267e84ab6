package services

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
)

// PayoffSvcFacade defines the payoff plan operations.
//
// All three operations first clear any existing sentinel-marked
// installments for the debt, so repeated calls with the same arguments are
// idempotent. The debt's plan marker is only updated after the ledger work
// has completed successfully.
type PayoffSvcFacade interface {
	// GeneratePlan builds a fresh payoff schedule for the debt using its
	// live balance and the given target date, replacing any existing plan.
	// A payoff date on or before today clears the plan instead. Returns
	// the installment entries that were written.
	GeneratePlan(ctx context.Context, debtID string, payoffDate time.Time, today time.Time) ([]domain.Entry, error)

	// RecalculatePlan regenerates the debt's schedule against its live
	// balance, keeping the target date recorded in the plan marker
	// (defaulting to today when the marker is absent).
	RecalculatePlan(ctx context.Context, debtID string, today time.Time) ([]domain.Entry, error)

	// RemovePlan deletes the debt's generated installments and clears the
	// plan marker.
	RemovePlan(ctx context.Context, debtID string) error
}
