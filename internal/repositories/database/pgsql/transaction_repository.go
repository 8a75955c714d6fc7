package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	"github.com/finledger/finledger_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		CategoryID:    d.CategoryID,
		Date:          d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		CategoryID:    m.CategoryID,
		Date:          m.Date,
		CategoryName:  m.CategoryName,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// Helper to convert slice of models.Transaction to slice of domain.Transaction
func toDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = toDomainTransaction(m)
	}
	return ds
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, amount, type, category_id, date, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Amount,
		modelTxn.Type,
		modelTxn.CategoryID,
		modelTxn.Date,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	// Filtering by user_id makes a foreign transaction indistinguishable from a
	// missing one.
	query := `
        SELECT t.transaction_id, t.user_id, t.amount, t.type, t.category_id, t.date, COALESCE(c.name, ''), t.created_at, t.last_updated_at
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.transaction_id = $1 AND t.user_id = $2;
    `
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.Type,
		&m.CategoryID,
		&m.Date,
		&m.CategoryName,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT t.transaction_id, t.user_id, t.amount, t.type, t.category_id, t.date, COALESCE(c.name, ''), t.created_at, t.last_updated_at
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1
        ORDER BY t.date DESC, t.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

func (r *PgxTransactionRepository) FindTransactionsByUserAndCategory(ctx context.Context, userID string, categoryID string, txnType domain.TransactionType) ([]domain.Transaction, error) {
	query := `
        SELECT t.transaction_id, t.user_id, t.amount, t.type, t.category_id, t.date, COALESCE(c.name, ''), t.created_at, t.last_updated_at
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.category_id = $2 AND t.type = $3
        ORDER BY t.date DESC, t.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID, categoryID, string(txnType))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by category: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

func (r *PgxTransactionRepository) FindTransactionsByUserAndDateRange(ctx context.Context, userID string, from time.Time, to time.Time) ([]domain.Transaction, error) {
	// Half-open window: from <= date < to.
	query := `
        SELECT t.transaction_id, t.user_id, t.amount, t.type, t.category_id, t.date, COALESCE(c.name, ''), t.created_at, t.last_updated_at
        FROM transactions t
        LEFT JOIN categories c ON c.category_id = t.category_id
        WHERE t.user_id = $1 AND t.date >= $2 AND t.date < $3
        ORDER BY t.date DESC, t.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer rows.Close()

	return scanTransactionRows(rows)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET amount = $1, type = $2, category_id = $3, date = $4, last_updated_at = $5
        WHERE transaction_id = $6 AND user_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelTxn.Amount,
		modelTxn.Type,
		modelTxn.CategoryID,
		modelTxn.Date,
		modelTxn.LastUpdatedAt,
		modelTxn.TransactionID,
		modelTxn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	query := `
        DELETE FROM transactions
        WHERE transaction_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// scanTransactionRows collects transaction rows with their joined category names.
func scanTransactionRows(rows pgx.Rows) ([]domain.Transaction, error) {
	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Amount,
			&m.Type,
			&m.CategoryID,
			&m.Date,
			&m.CategoryName,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return toDomainTransactionSlice(modelTxns), nil
}
