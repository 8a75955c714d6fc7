package models

import "github.com/shopspring/decimal"

// Budget represents a persisted monthly budget record.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // FK -> users.user_id (Not Null)
	Amount   decimal.Decimal `json:"amount"`   // Non-negative magnitude
	Month    int             `json:"month"`    // 1..12
	Year     int             `json:"year"`     // Four-digit year
	AuditFields
}
