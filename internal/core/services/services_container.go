package services

import (
	portsrepo "github.com/mpalomar/budgeteer/internal/core/ports/repositories"
	portssvc "github.com/mpalomar/budgeteer/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Entry = NewEntryService(repos.EntryRepo)
	container.Debt = NewDebtService(repos.DebtRepo)
	container.Payoff = NewPayoffService(repos.DebtRepo, repos.EntryRepo)
	container.Report = NewReportService(repos.ReportingRepo)

	return container
}
