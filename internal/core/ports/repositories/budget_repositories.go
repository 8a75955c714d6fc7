package repositories

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetsByUser retrieves all budgets owned by userID.
	FindBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)

	// FindBudgetsByUserAndPeriod retrieves userID's budgets for a month/year period.
	FindBudgetsByUserAndPeriod(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// SaveBudgetUnique persists a new budget only when no budget exists yet
	// for the owner's (month, year) period. The existence check and the
	// insert run in one database transaction; a concurrent request for the
	// same period sees apperrors.ErrDuplicate.
	SaveBudgetUnique(ctx context.Context, budget domain.Budget) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
