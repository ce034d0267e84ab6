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

// entryServiceImpl implements the EntrySvcFacade interface.
type entryServiceImpl struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new entry service.
func NewEntryService(repo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryServiceImpl{entryRepo: repo}
}

var _ portssvc.EntrySvcFacade = (*entryServiceImpl)(nil)

func (s *entryServiceImpl) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	date, err := time.ParseInLocation(dto.DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	now := time.Now()
	entry := domain.Entry{
		EntryID:  uuid.NewString(),
		Date:     date,
		Kind:     req.Kind,
		Amount:   req.Amount.Round(2),
		Category: req.Category,
		LineItem: req.LineItem,
		Note:     req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID), slog.String("kind", string(entry.Kind)))
	return &entry, nil
}

func (s *entryServiceImpl) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry by ID", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryServiceImpl) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.Entry, error) {
	var filter domain.EntryFilter

	if params.Year != 0 {
		month := time.January
		lastMonth := time.December
		if params.Month != 0 {
			month = time.Month(params.Month)
			lastMonth = month
		}
		from := time.Date(params.Year, month, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(params.Year, lastMonth+1, 0, 0, 0, 0, 0, time.UTC)
		filter.From = &from
		filter.To = &to
	}
	if params.Kind != "" {
		kind := domain.EntryKind(params.Kind)
		filter.Kind = &kind
	}
	if params.Category != "" {
		filter.Category = &params.Category
	}
	if params.LineItem != "" {
		filter.LineItem = &params.LineItem
	}

	entries, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, err
	}
	return entries, nil
}

func (s *entryServiceImpl) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for update", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if req.Date != nil {
		date, err := time.ParseInLocation(dto.DateLayout, *req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, apperrors.ErrValidation)
		}
		entry.Date = date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		entry.Amount = req.Amount.Round(2)
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	entry.LastUpdatedAt = time.Now()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *entryServiceImpl) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}
