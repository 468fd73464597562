package repositories

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// TransactionReader defines read operations for purchase data
type TransactionReader interface {
	// FindTransactionByCheckoutSession retrieves a purchase by its checkout session id.
	FindTransactionByCheckoutSession(ctx context.Context, sessionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a paginated list of a user's purchases using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for purchase data
type TransactionWriter interface {
	// SaveTransaction persists a new pending purchase.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// CompleteCheckoutSession marks the pending purchase for the given checkout
	// session as completed and grants its credits to the owning user, all within
	// one database transaction. A session that is unknown returns
	// apperrors.ErrNotFound; one already completed returns apperrors.ErrDuplicate.
	CompleteCheckoutSession(ctx context.Context, sessionID string) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all purchase-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
