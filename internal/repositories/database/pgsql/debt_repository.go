package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mpalomar/budgeteer/internal/apperrors"
	"github.com/mpalomar/budgeteer/internal/core/domain"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtColumns = "debt_id, name, current_balance, due_day_hint, minimum_payment, payoff_plan_date, created_at, last_updated_at"

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		d          domain.Debt
		minPayment decimal.NullDecimal
		planDate   sql.NullTime
	)
	err := row.Scan(
		&d.DebtID,
		&d.Name,
		&d.CurrentBalance,
		&d.DueDayHint,
		&minPayment,
		&planDate,
		&d.CreatedAt,
		&d.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if minPayment.Valid {
		d.MinimumPayment = &minPayment.Decimal
	}
	if planDate.Valid {
		t := planDate.Time
		d.PayoffPlanDate = &t
	}
	return &d, nil
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		INSERT INTO debts (debt_id, name, current_balance, due_day_hint, minimum_payment, payoff_plan_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		debt.DebtID,
		debt.Name,
		debt.CurrentBalance,
		debt.DueDayHint,
		nullableDecimal(debt.MinimumPayment),
		nullableTime(debt.PayoffPlanDate),
		debt.CreatedAt,
		debt.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: debt named %q already exists", apperrors.ErrDuplicate, debt.Name)
		}
		return fmt.Errorf("failed to save debt %s: %w", debt.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`
	debt, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}
	return debt, nil
}

// ListDebts retrieves all debts ordered by name.
func (r *PgxDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, *debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating debt rows: %w", err)
	}
	return debts, nil
}

// UpdateDebt updates a debt's mutable fields. The plan marker is managed
// separately via UpdatePlanDate.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	query := `
		UPDATE debts
		SET name = $2, current_balance = $3, due_day_hint = $4, minimum_payment = $5, last_updated_at = $6
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		debt.DebtID,
		debt.Name,
		debt.CurrentBalance,
		debt.DueDayHint,
		nullableDecimal(debt.MinimumPayment),
		debt.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: debt named %q already exists", apperrors.ErrDuplicate, debt.Name)
		}
		return fmt.Errorf("failed to update debt %s: %w", debt.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePlanDate sets or clears the payoff plan marker.
func (r *PgxDebtRepository) UpdatePlanDate(ctx context.Context, debtID string, planDate *time.Time, now time.Time) error {
	query := `
		UPDATE debts
		SET payoff_plan_date = $2, last_updated_at = $3
		WHERE debt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, debtID, nullableTime(planDate), now)
	if err != nil {
		return fmt.Errorf("failed to update plan date for debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebt removes a debt and every generated installment for it within a
// single transaction, so a failure part-way through never orphans plan rows
// whose owning debt is gone.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var name string
	err = tx.QueryRow(ctx, `SELECT name FROM debts WHERE debt_id = $1;`, debtID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find debt %s for deletion: %w", debtID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM debts WHERE debt_id = $1;`, debtID); err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}

	deleteQuery := `DELETE FROM entries WHERE ` + planEntriesPredicate + `;`
	if _, err := tx.Exec(ctx, deleteQuery, domain.Expense, domain.DebtPaymentCategory, name, domain.PlanSentinel); err != nil {
		return fmt.Errorf("failed to delete plan entries for debt %s: %w", debtID, err)
	}

	return r.Commit(ctx, tx)
}

func nullableDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
