package services

import (
	"context"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/mpalomar/budgeteer/internal/dto"
)

// EntrySvcFacade defines the business operations on ledger entries.
type EntrySvcFacade interface {
	// CreateEntry persists a new manually entered ledger entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error)

	// GetEntryByID retrieves a specific entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves entries matching the given query parameters.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.Entry, error)

	// UpdateEntry applies a manual edit. Only date, amount and note may
	// change; kind, category and line item are immutable after creation.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes a single entry.
	DeleteEntry(ctx context.Context, entryID string) error
}
