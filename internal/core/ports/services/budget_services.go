package services

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/finledger/finledger_backend/internal/dto"
)

// BudgetSvcFacade defines the budget operations exposed to handlers.
type BudgetSvcFacade interface {
	// CreateBudget validates and persists a new budget owned by userID.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// ListBudgets returns all budgets owned by userID.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// ListBudgetsForPeriod returns userID's budgets for one (month, year) period.
	ListBudgetsForPeriod(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error)
}
