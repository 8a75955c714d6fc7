package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finledger/finledger_backend/internal/core/domain"
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/middleware"
)

// reportingService aggregates a user's transactions into monthly summaries.
type reportingService struct {
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(transactionRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{transactionRepo: transactionRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlyReport totals userID's income and expenses over one calendar month.
// The window is half-open: the first instant of the month is included, the
// first instant of the next month is not. A month with no transactions
// yields a zero report, which is not an error.
// Implements portssvc.ReportingSvcFacade
func (s *reportingService) MonthlyReport(ctx context.Context, userID string, month, year int) (*domain.MonthlyReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateBudgetPeriod(month, year); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	txns, err := s.transactionRepo.FindTransactionsByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		logger.Error("Failed to load transactions for report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expenses = expenses.Add(txn.Amount)
		}
	}

	return &domain.MonthlyReport{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}, nil
}
