package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:     newPgxEntryRepository(dbPool),
		DebtRepo:      newPgxDebtRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
