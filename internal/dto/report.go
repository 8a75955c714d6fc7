package dto

import (
	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportResponse defines the computed income/expense/balance totals
// for one calendar month.
type MonthlyReportResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport to its response DTO.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Income:   r.Income,
		Expenses: r.Expenses,
		Balance:  r.Balance,
	}
}
