package domain

import "github.com/shopspring/decimal"

// Budget represents a monthly spending target owned by a user.
// (UserID, Month, Year) is the natural key for "the budget for that period";
// duplicates are allowed unless uniqueness is enabled in config.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // Owner
	Amount   decimal.Decimal `json:"amount"`   // Non-negative target magnitude
	Month    int             `json:"month"`    // 1..12
	Year     int             `json:"year"`     // Four-digit calendar year
	AuditFields
}
