package repositories

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
)

// DebtReader defines read operations for debt records.
type DebtReader interface {
	// FindDebtByID retrieves a specific debt by its unique identifier.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts ordered by name.
	ListDebts(ctx context.Context) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt records.
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt updates an existing debt's mutable fields.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// UpdatePlanDate sets or clears the payoff plan marker.
	UpdatePlanDate(ctx context.Context, debtID string, planDate *time.Time, now time.Time) error

	// DeleteDebt removes a debt and its generated installments in one
	// transaction.
	DeleteDebt(ctx context.Context, debtID string) error
}

// DebtRepositoryFacade combines all debt repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
