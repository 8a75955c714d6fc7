package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/dto"
	"github.com/finledger/finledger_backend/internal/middleware"
)

// budgetService provides per-user monthly budget management.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade

	// uniquePerPeriod rejects a second budget for the same month and year
	// with ErrDuplicate, via an atomic check-and-insert in the repository.
	// Off by default: repeated budgets for a period are allowed and coexist.
	uniquePerPeriod bool
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, uniquePerPeriod bool) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, uniquePerPeriod: uniquePerPeriod}
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func validateBudgetPeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if year < 1 {
		return fmt.Errorf("%w: year must be a positive number", apperrors.ErrValidation)
	}
	return nil
}

// CreateBudget validates and persists a budget for one calendar month owned
// by userID.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := validateBudgetPeriod(req.Month, req.Year); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   userID,
		Amount:   req.Amount,
		Month:    req.Month,
		Year:     req.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	save := s.budgetRepo.SaveBudget
	if s.uniquePerPeriod {
		save = s.budgetRepo.SaveBudgetUnique
	}
	if err := save(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save budget", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// ListBudgetsForPeriod returns userID's budgets for one (month, year) period.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) ListBudgetsForPeriod(ctx context.Context, userID string, month, year int) ([]domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateBudgetPeriod(month, year); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.FindBudgetsByUserAndPeriod(ctx, userID, month, year)
	if err != nil {
		logger.Error("Failed to list budgets for period", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list budgets for period: %w", err)
	}
	return budgets, nil
}

// ListBudgets returns all of userID's budgets, most recent period first.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budgets, err := s.budgetRepo.FindBudgetsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}
