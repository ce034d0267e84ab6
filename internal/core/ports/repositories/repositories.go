package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	EntryRepo     EntryRepositoryFacade
	DebtRepo      DebtRepositoryFacade
	ReportingRepo ReportingRepository
}
