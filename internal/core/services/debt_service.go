package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
	"github.com/mpalomar/budgeteer/internal/dto"
)

// debtServiceImpl implements the DebtSvcFacade interface.
type debtServiceImpl struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtServiceImpl{debtRepo: debtRepo}
}

var _ portssvc.DebtSvcFacade = (*debtServiceImpl)(nil)

func (s *debtServiceImpl) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.CurrentBalance.IsNegative() {
		return nil, fmt.Errorf("current balance must not be negative: %w", apperrors.ErrValidation)
	}
	if req.MinimumPayment != nil && req.MinimumPayment.IsNegative() {
		return nil, fmt.Errorf("minimum payment must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	debt := domain.Debt{
		DebtID:         uuid.NewString(),
		Name:           req.Name,
		CurrentBalance: req.CurrentBalance.Round(2),
		DueDayHint:     req.DueDayHint,
		MinimumPayment: req.MinimumPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("debt_id", debt.DebtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.DebtID), slog.String("name", debt.Name))
	return &debt, nil
}

func (s *debtServiceImpl) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt by ID", slog.String("debt_id", debtID))
		}
		return nil, err
	}
	return debt, nil
}

func (s *debtServiceImpl) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, err
	}
	return debts, nil
}

func (s *debtServiceImpl) UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt for update", slog.String("debt_id", debtID))
		}
		return nil, err
	}

	if req.Name != nil {
		debt.Name = *req.Name
	}
	if req.CurrentBalance != nil {
		if req.CurrentBalance.IsNegative() {
			return nil, fmt.Errorf("current balance must not be negative: %w", apperrors.ErrValidation)
		}
		// Balance edits do not touch an existing plan; the schedule stays
		// stale until the user recalculates.
		debt.CurrentBalance = req.CurrentBalance.Round(2)
	}
	if req.DueDayHint != nil {
		debt.DueDayHint = *req.DueDayHint
	}
	if req.MinimumPayment != nil {
		if req.MinimumPayment.IsNegative() {
			return nil, fmt.Errorf("minimum payment must not be negative: %w", apperrors.ErrValidation)
		}
		debt.MinimumPayment = req.MinimumPayment
	}
	debt.LastUpdatedAt = time.Now()

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt updated", slog.String("debt_id", debtID))
	return debt, nil
}

func (s *debtServiceImpl) DeleteDebt(ctx context.Context, debtID string) error {
	// The repository removes the debt and its generated installments in one
	// transaction.
	if err := s.debtRepo.DeleteDebt(ctx, debtID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		}
		return err
	}

	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}
