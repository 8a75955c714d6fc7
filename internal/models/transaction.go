package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the domain transaction type for persistence.
// The valid values live in the domain package; rows are constrained by a
// CHECK in the transactions table.
type TransactionType string

// Transaction represents a persisted income or expense record.
// Note: Amount is stored as NUMERIC and mapped to a precise decimal type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Non-negative magnitude
	Type          TransactionType `json:"type"`          // income or expense (Not Null)
	CategoryID    string          `json:"categoryID"`    // FK -> categories.category_id (Not Null)
	Date          time.Time       `json:"date"`          // Transaction date (Not Null)
	CategoryName  string          `json:"categoryName"`  // Joined from categories on read
	AuditFields
}
