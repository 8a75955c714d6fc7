package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portsrepo "github.com/finledger/finledger_backend/internal/core/ports/repositories"
	"github.com/finledger/finledger_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// Helper to convert domain.Budget to models.Budget
func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID: d.BudgetID,
		UserID:   d.UserID,
		Amount:   d.Amount,
		Month:    d.Month,
		Year:     d.Year,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Budget to domain.Budget
func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID: m.BudgetID,
		UserID:   m.UserID,
		Amount:   m.Amount,
		Month:    m.Month,
		Year:     m.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := toModelBudget(budget)
	query := `
        INSERT INTO budgets (budget_id, user_id, amount, month, year, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.Amount,
		modelBudget.Month,
		modelBudget.Year,
		modelBudget.CreatedAt,
		modelBudget.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// SaveBudgetUnique inserts budget only when the owner has no budget for the
// (month, year) period yet. Check and insert share one transaction; the
// FOR UPDATE lock on an existing row keeps two concurrent creates for the
// same period from both passing the check.
func (r *PgxBudgetRepository) SaveBudgetUnique(ctx context.Context, budget domain.Budget) error {
	modelBudget := toModelBudget(budget)
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		checkQuery := `
        SELECT budget_id
        FROM budgets
        WHERE user_id = $1 AND month = $2 AND year = $3
        LIMIT 1
        FOR UPDATE;
    `
		var existingID string
		err := tx.QueryRow(ctx, checkQuery, modelBudget.UserID, modelBudget.Month, modelBudget.Year).Scan(&existingID)
		if err == nil {
			return fmt.Errorf("budget already exists for %d/%d: %w", modelBudget.Month, modelBudget.Year, apperrors.ErrDuplicate)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check budgets for period: %w", err)
		}

		insertQuery := `
        INSERT INTO budgets (budget_id, user_id, amount, month, year, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
		_, err = tx.Exec(ctx, insertQuery,
			modelBudget.BudgetID,
			modelBudget.UserID,
			modelBudget.Amount,
			modelBudget.Month,
			modelBudget.Year,
			modelBudget.CreatedAt,
			modelBudget.LastUpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save budget: %w", err)
		}
		return nil
	})
}

func (r *PgxBudgetRepository) FindBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
        SELECT budget_id, user_id, amount, month, year, created_at, last_updated_at
        FROM budgets
        WHERE user_id = $1
        ORDER BY year DESC, month DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	return scanBudgetRows(rows)
}

func (r *PgxBudgetRepository) FindBudgetsByUserAndPeriod(ctx context.Context, userID string, month int, year int) ([]domain.Budget, error) {
	query := `
        SELECT budget_id, user_id, amount, month, year, created_at, last_updated_at
        FROM budgets
        WHERE user_id = $1 AND month = $2 AND year = $3;
    `
	rows, err := r.Pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for period: %w", err)
	}
	defer rows.Close()

	return scanBudgetRows(rows)
}

func scanBudgetRows(rows pgx.Rows) ([]domain.Budget, error) {
	modelBudgets := []models.Budget{}
	for rows.Next() {
		var m models.Budget
		err := rows.Scan(
			&m.BudgetID,
			&m.UserID,
			&m.Amount,
			&m.Month,
			&m.Year,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		modelBudgets = append(modelBudgets, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}

	ds := make([]domain.Budget, len(modelBudgets))
	for i, m := range modelBudgets {
		ds[i] = toDomainBudget(m)
	}
	return ds, nil
}
