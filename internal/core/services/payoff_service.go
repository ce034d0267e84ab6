package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/mpalomar/budgeteer/internal/core/payoff"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
)

// payoffServiceImpl implements the PayoffSvcFacade interface.
//
// Plan replacement is delegated to EntryWriter.ReplacePlanEntries, which
// removes the old sentinel entries and inserts the new ones in one
// transaction. The debt's plan marker is written last, only after the
// ledger work succeeded.
type payoffServiceImpl struct {
	BaseService
	debtRepo  portsrepo.DebtRepositoryFacade
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewPayoffService creates a new payoff plan service.
func NewPayoffService(debtRepo portsrepo.DebtRepositoryFacade, entryRepo portsrepo.EntryRepositoryFacade) portssvc.PayoffSvcFacade {
	return &payoffServiceImpl{debtRepo: debtRepo, entryRepo: entryRepo}
}

var _ portssvc.PayoffSvcFacade = (*payoffServiceImpl)(nil)

func (s *payoffServiceImpl) GeneratePlan(ctx context.Context, debtID string, payoffDate time.Time, today time.Time) ([]domain.Entry, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt for plan generation", slog.String("debt_id", debtID))
		}
		return nil, err
	}

	dueDay := payoff.ParseDueDay(debt.DueDayHint)
	dates := payoff.InstallmentDates(today, payoffDate, dueDay)
	schedule := payoff.BuildSchedule(debt.CurrentBalance, dates)

	now := time.Now()
	entries := make([]domain.Entry, len(schedule))
	for i, inst := range schedule {
		entries[i] = domain.Entry{
			EntryID:  uuid.NewString(),
			Date:     inst.Date,
			Kind:     domain.Expense,
			Amount:   inst.Amount,
			Category: domain.DebtPaymentCategory,
			LineItem: debt.Name,
			Note:     domain.PlanSentinel,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	// The old plan is cleared even when no new installments were produced,
	// so generating with a past payoff date removes the plan outright.
	if err := s.entryRepo.ReplacePlanEntries(ctx, debt.Name, entries); err != nil {
		s.LogError(ctx, err, "Failed to replace plan entries",
			slog.String("debt_id", debtID), slog.String("name", debt.Name))
		return nil, err
	}

	var marker *time.Time
	if len(entries) > 0 {
		marker = &payoffDate
	}
	if err := s.debtRepo.UpdatePlanDate(ctx, debtID, marker, now); err != nil {
		s.LogError(ctx, err, "Plan entries written but updating the plan marker failed",
			slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Payoff plan generated",
		slog.String("debt_id", debtID),
		slog.String("name", debt.Name),
		slog.Int("installments", len(entries)))
	return entries, nil
}

func (s *payoffServiceImpl) RecalculatePlan(ctx context.Context, debtID string, today time.Time) ([]domain.Entry, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt for plan recalculation", slog.String("debt_id", debtID))
		}
		return nil, err
	}

	// Keep the existing target date; the live balance is picked up inside
	// GeneratePlan. A missing marker degenerates to clearing the plan.
	target := today
	if debt.PayoffPlanDate != nil {
		target = *debt.PayoffPlanDate
	}
	return s.GeneratePlan(ctx, debtID, target, today)
}

func (s *payoffServiceImpl) RemovePlan(ctx context.Context, debtID string) error {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find debt for plan removal", slog.String("debt_id", debtID))
		}
		return err
	}

	removed, err := s.entryRepo.DeletePlanEntries(ctx, debt.Name)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete plan entries",
			slog.String("debt_id", debtID), slog.String("name", debt.Name))
		return err
	}

	if err := s.debtRepo.UpdatePlanDate(ctx, debtID, nil, time.Now()); err != nil {
		s.LogError(ctx, err, "Plan entries removed but clearing the plan marker failed",
			slog.String("debt_id", debtID))
		return err
	}

	s.LogInfo(ctx, "Payoff plan removed",
		slog.String("debt_id", debtID),
		slog.Int64("entries_removed", removed))
	return nil
}
