package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregated reads.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// CategoryTotals sums entry amounts per (kind, category) over the inclusive
// date range.
func (r *PgxReportingRepository) CategoryTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT kind, category, SUM(amount)
		FROM entries
		WHERE entry_date >= $1 AND entry_date <= $2
		GROUP BY kind, category
		ORDER BY kind, category;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Kind, &t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating category total rows: %w", err)
	}
	return totals, nil
}

// MonthlyNetTotals sums income and expense per calendar month over the
// inclusive date range, in chronological order.
func (r *PgxReportingRepository) MonthlyNetTotals(ctx context.Context, from, to time.Time) ([]domain.MonthTotal, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM entry_date)::int,
			EXTRACT(MONTH FROM entry_date)::int,
			COALESCE(SUM(amount) FILTER (WHERE kind = $3), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = $4), 0)
		FROM entries
		WHERE entry_date >= $1 AND entry_date <= $2
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, domain.Income, domain.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.MonthTotal
	for rows.Next() {
		var (
			t     domain.MonthTotal
			month int
		)
		if err := rows.Scan(&t.Year, &month, &t.Income, &t.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		t.Month = time.Month(month)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating monthly total rows: %w", err)
	}
	return totals, nil
}
