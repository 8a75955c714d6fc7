package services

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
)

// CategorySvcFacade defines the category reference operations exposed to handlers.
type CategorySvcFacade interface {
	// ListCategories returns all spending categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
