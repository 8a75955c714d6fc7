package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the closed set of transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single income or expense record owned by a user.
// Amount is always a non-negative magnitude; the sign is implied by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owner; immutable after creation
	Amount        decimal.Decimal `json:"amount"`        // Non-negative magnitude
	Type          TransactionType `json:"type"`          // income or expense
	CategoryID    string          `json:"categoryID"`    // FK -> categories.category_id
	Date          time.Time       `json:"date"`          // Calendar date; time-of-day not significant
	CategoryName  string          `json:"categoryName"`  // Resolved on read, not persisted on the transaction
	AuditFields
}
