package repositories

import (
	"context"
	"time"

	"github.com/finledger/finledger_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Every read is scoped to an owning user; a transaction that exists but
// belongs to another user is reported as not found.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByUser retrieves all transactions owned by userID,
	// with category names resolved, ordered by date descending.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// FindTransactionsByUserAndCategory retrieves userID's transactions of the
	// given type within a single category.
	FindTransactionsByUserAndCategory(ctx context.Context, userID string, categoryID string, txnType domain.TransactionType) ([]domain.Transaction, error)

	// FindTransactionsByUserAndDateRange retrieves userID's transactions with
	// from <= date < to.
	FindTransactionsByUserAndDateRange(ctx context.Context, userID string, from time.Time, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction owned by txn.UserID.
	// Returns apperrors.ErrNotFound when no owned row matched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by userID.
	// Returns apperrors.ErrNotFound when no owned row matched.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
