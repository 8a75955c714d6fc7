package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyReport is a derived income/expense/balance summary for one calendar
// month. It is recomputed from the current transaction set on every request
// and never persisted.
type MonthlyReport struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"` // Income - Expenses
}
