package services

import (
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/platform/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) portssvc.ServiceContainer {
	return portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, cfg.BudgetUniquePerPeriod),
		Reporting:   NewReportingService(repos.TransactionRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		User:        NewUserService(repos.UserRepo),
	}
}
