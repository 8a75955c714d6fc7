package services

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
)

// ReportingSvcFacade defines the reporting operations exposed to handlers.
type ReportingSvcFacade interface {
	// MonthlyReport computes income, expense, and balance totals for userID's
	// transactions in the half-open window [first of month, first of next month).
	MonthlyReport(ctx context.Context, userID string, month int, year int) (*domain.MonthlyReport, error)
}
