package repositories

import (
	"context"
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
)

// EntryReader defines read operations for ledger entries.
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves entries matching the filter, ordered by date.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
}

// EntryWriter defines write operations for ledger entries.
type EntryWriter interface {
	// SaveEntry persists a single new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// SaveEntries persists a batch of new entries.
	SaveEntries(ctx context.Context, entries []domain.Entry) error

	// UpdateEntry updates an existing entry's date, amount and note.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes a single entry.
	DeleteEntry(ctx context.Context, entryID string) error

	// DeletePlanEntries removes every sentinel-marked installment for the
	// named debt, returning the number of rows removed. Manually entered
	// rows sharing the category and line item are never matched.
	DeletePlanEntries(ctx context.Context, debtName string) (int64, error)

	// ReplacePlanEntries atomically removes the named debt's sentinel
	// entries and inserts the given replacements in a single transaction.
	// An empty replacement slice just clears the old plan.
	ReplacePlanEntries(ctx context.Context, debtName string, entries []domain.Entry) error
}

// EntryRepositoryFacade combines all entry repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// ReportingRepository provides aggregated reads over the ledger.
type ReportingRepository interface {
	// CategoryTotals sums entry amounts per (kind, category) over the
	// inclusive date range.
	CategoryTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error)

	// MonthlyNetTotals sums income and expense per calendar month over the
	// inclusive date range, in chronological order.
	MonthlyNetTotals(ctx context.Context, from, to time.Time) ([]domain.MonthTotal, error)
}
