package services

import (
	"context"

	"github.com/finledger/finledger_backend/internal/core/domain"
	"github.com/finledger/finledger_backend/internal/dto"
)

// UserSvcFacade defines user account operations exposed to the auth handlers.
type UserSvcFacade interface {
	// CreateUser registers a new account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// AuthenticateUser verifies an email/password pair. It returns
	// apperrors.ErrUnauthorized for unknown emails and wrong passwords alike,
	// so callers cannot tell which of the two failed.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
}
