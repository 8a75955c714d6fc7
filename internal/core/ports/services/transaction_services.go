package services

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/finledger/finledger_backend/internal/dto"
)

// TransactionSvcFacade defines the transaction operations exposed to handlers.
// userID always comes from the verified auth context, never from request input.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction owned by userID.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns all of userID's transactions with category names resolved.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// UpdateTransaction applies a partial update to a transaction owned by userID.
	// A transaction that does not exist or is owned by someone else yields
	// apperrors.ErrNotFound.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by userID, with the same
	// not-found semantics as UpdateTransaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error

	// ListExpensesByCategory returns userID's expense transactions in one category.
	ListExpensesByCategory(ctx context.Context, userID string, categoryID string) ([]domain.Transaction, error)
}
