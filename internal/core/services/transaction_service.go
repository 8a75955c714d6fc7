package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/dto"
	"github.com/finledger/finledger_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// transactionDateLayouts are the accepted wire formats for transaction dates.
var transactionDateLayouts = []string{"2006-01-02", time.RFC3339}

// transactionService provides scoped CRUD for transaction records.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo, categoryRepo: categoryRepo}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// parseTransactionDate parses a wire-format date. Time-of-day is not
// significant for reporting, so the result is truncated to midnight UTC.
func parseTransactionDate(value string) (time.Time, error) {
	for _, layout := range transactionDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
}

// validateAmount rejects negative magnitudes; the sign is implied by the type.
func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	return nil
}

// validateTransactionType rejects anything outside the closed income/expense set.
func validateTransactionType(t domain.TransactionType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: type must be one of income, expense", apperrors.ErrValidation)
	}
	return nil
}

// checkCategoryExists rejects references to categories outside the shared
// catalog before the insert reaches the FK constraint.
func (s *transactionService) checkCategoryExists(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, categoryID)
		}
		return fmt.Errorf("failed to check category: %w", err)
	}
	return nil
}

// CreateTransaction validates and persists a new transaction owned by userID.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txnType := domain.TransactionType(req.Type)
	if err := validateTransactionType(txnType); err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.CategoryID == "" {
		return nil, fmt.Errorf("%w: categoryId is required", apperrors.ErrValidation)
	}
	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID, // bound to the authenticated caller, never taken from the payload
		Amount:        req.Amount,
		Type:          txnType,
		CategoryID:    req.CategoryID,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// ListTransactions returns all of userID's transactions, newest first, with
// category names resolved.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction applies a partial update to a transaction owned by userID.
// A transaction that exists under another user is reported as not found, so
// ownership cannot be probed. A failed validation leaves the record unchanged.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	// Apply partial updates, re-validating each changed field per creation rules.
	updated := false
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
		updated = true
	}
	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if err := validateTransactionType(txnType); err != nil {
			return nil, err
		}
		txn.Type = txnType
		updated = true
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			return nil, fmt.Errorf("%w: categoryId must not be empty", apperrors.ErrValidation)
		}
		if err := s.checkCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		txn.CategoryID = *req.CategoryID
		txn.CategoryName = "" // stale after a category change; resolved on next read
		updated = true
	}
	if req.Date != nil {
		date, err := parseTransactionDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
		updated = true
	}

	if !updated {
		logger.Debug("No fields provided for transaction update", slog.String("transaction_id", transactionID))
		return txn, nil
	}

	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to save transaction update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to save transaction update: %w", err)
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a transaction owned by userID. Deleting a missing
// or foreign id is an error, matching the creation error model.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}

// ListExpensesByCategory returns userID's expense transactions in one
// category. Income records never appear, even when categorized identically.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) ListExpensesByCategory(ctx context.Context, userID string, categoryID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.transactionRepo.FindTransactionsByUserAndCategory(ctx, userID, categoryID, domain.Expense)
	if err != nil {
		logger.Error("Failed to list expenses by category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to list expenses by category: %w", err)
	}
	return txns, nil
}
