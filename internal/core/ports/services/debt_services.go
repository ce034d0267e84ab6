package services

import (
	"context"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/mpalomar/budgeteer/internal/dto"
)

// DebtSvcFacade defines the business operations on debt records.
type DebtSvcFacade interface {
	// CreateDebt persists a new debt.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)

	// GetDebtByID retrieves a specific debt.
	GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)

	// ListDebts retrieves all debts.
	ListDebts(ctx context.Context) ([]domain.Debt, error)

	// UpdateDebt updates a debt's mutable fields (name, balance, due day
	// hint, minimum payment).
	UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes a debt and every generated installment for it.
	DeleteDebt(ctx context.Context, debtID string) error
}
