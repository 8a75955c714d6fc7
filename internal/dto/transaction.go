package dto

import (
	"time"

	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// The owning user is never part of the payload; it comes from the verified
// auth context.
type CreateTransactionRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"notnegative"`
	Type       string          `json:"type" binding:"required,oneof=income expense"`
	CategoryID string          `json:"categoryId" binding:"required"`
	Date       string          `json:"date" binding:"required"` // "2006-01-02" or RFC3339
}

// UpdateTransactionRequest defines the data allowed for a partial transaction update.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Type       *string          `json:"type"`
	CategoryID *string          `json:"categoryId"`
	Date       *string          `json:"date"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName,omitempty"`
	Date          string          `json:"date"` // "2006-01-02"
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		CategoryID:    txn.CategoryID,
		CategoryName:  txn.CategoryName,
		Date:          txn.Date.Format("2006-01-02"),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
