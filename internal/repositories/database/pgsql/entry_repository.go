package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = "entry_id, entry_date, kind, amount, category, line_item, note, created_at, last_updated_at"

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.EntryID,
		&e.Date,
		&e.Kind,
		&e.Amount,
		&e.Category,
		&e.LineItem,
		&e.Note,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveEntry inserts a single new entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	query := `
		INSERT INTO entries (entry_id, entry_date, kind, amount, category, line_item, note, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.Date,
		entry.Kind,
		entry.Amount,
		entry.Category,
		entry.LineItem,
		entry.Note,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: entry with ID %s already exists", apperrors.ErrDuplicate, entry.EntryID)
		}
		return fmt.Errorf("failed to save entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// SaveEntries inserts a batch of new entries using a pgx batch.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := queueEntryInserts(entries)
	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range entries {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to batch insert entries: %w", err)
		}
	}
	return nil
}

func queueEntryInserts(entries []domain.Entry) *pgx.Batch {
	query := `
		INSERT INTO entries (entry_id, entry_date, kind, amount, category, line_item, note, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query,
			e.EntryID,
			e.Date,
			e.Kind,
			e.Amount,
			e.Category,
			e.LineItem,
			e.Note,
			e.CreatedAt,
			e.LastUpdatedAt,
		)
	}
	return batch
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves entries matching the filter, ordered by date then ID.
// The WHERE clause is assembled from positional parameters only.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	var (
		clauses []string
		args    []any
	)
	addClause := func(expr string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}

	if filter.From != nil {
		addClause("entry_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		addClause("entry_date <= $%d", *filter.To)
	}
	if filter.Kind != nil {
		addClause("kind = $%d", *filter.Kind)
	}
	if filter.Category != nil {
		addClause("category = $%d", *filter.Category)
	}
	if filter.LineItem != nil {
		addClause("line_item = $%d", *filter.LineItem)
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY entry_date, entry_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating entry rows: %w", err)
	}
	return entries, nil
}

// UpdateEntry updates an entry's date, amount and note.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	query := `
		UPDATE entries
		SET entry_date = $2, amount = $3, note = $4, last_updated_at = $5
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.Date,
		entry.Amount,
		entry.Note,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a single entry.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// planEntriesPredicate matches only sentinel-marked installments, so manual
// "Debt Payment" rows for the same debt are never caught by bulk deletes.
const planEntriesPredicate = `kind = $1 AND category = $2 AND line_item = $3 AND note = $4`

// DeletePlanEntries removes every generated installment for the named debt.
func (r *PgxEntryRepository) DeletePlanEntries(ctx context.Context, debtName string) (int64, error) {
	query := `DELETE FROM entries WHERE ` + planEntriesPredicate + `;`
	tag, err := r.Pool.Exec(ctx, query, domain.Expense, domain.DebtPaymentCategory, debtName, domain.PlanSentinel)
	if err != nil {
		return 0, fmt.Errorf("failed to delete plan entries for %q: %w", debtName, err)
	}
	return tag.RowsAffected(), nil
}

// ReplacePlanEntries removes the named debt's generated installments and
// inserts the replacements within a single transaction, so a failure
// part-way through never leaves the debt without a plan it used to have.
func (r *PgxEntryRepository) ReplacePlanEntries(ctx context.Context, debtName string, entries []domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteQuery := `DELETE FROM entries WHERE ` + planEntriesPredicate + `;`
	if _, err := tx.Exec(ctx, deleteQuery, domain.Expense, domain.DebtPaymentCategory, debtName, domain.PlanSentinel); err != nil {
		return fmt.Errorf("failed to clear plan entries for %q: %w", debtName, err)
	}

	if len(entries) > 0 {
		batch := queueEntryInserts(entries)
		br := tx.SendBatch(ctx, batch)
		for range entries {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert plan entries for %q: %w", debtName, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close plan insert batch for %q: %w", debtName, err)
		}
	}

	return r.Commit(ctx, tx)
}
