package services

// ServiceContainer bundles every service facade for injection into the
// handler layer.
type ServiceContainer struct {
	Entry  EntrySvcFacade
	Debt   DebtSvcFacade
	Payoff PayoffSvcFacade
	Report ReportSvcFacade
}
