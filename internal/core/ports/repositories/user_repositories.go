package repositories

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by their auth provider subject.
	FindUserByProviderID(ctx context.Context, providerID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// CreditManager defines balance operations on a user's AI credits.
type CreditManager interface {
	// ConsumeCredit atomically spends one credit if the balance allows it.
	// It returns apperrors.ErrInsufficientCredits when the balance is zero.
	ConsumeCredit(ctx context.Context, userID string) (remaining int64, err error)
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	CreditManager
}
