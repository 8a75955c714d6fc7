package services

// ServiceContainer holds all service facades needed by the handlers.
// This makes injecting dependencies into route registration cleaner.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Budget      BudgetSvcFacade
	Reporting   ReportingSvcFacade
	Category    CategorySvcFacade
	User        UserSvcFacade
}
