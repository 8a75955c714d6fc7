package repositories

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
)

// CategoryReader defines read operations for category reference data.
type CategoryReader interface {
	// FindCategoryByID retrieves a single category.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategories retrieves all categories.
	FindCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
}
