package services

import "context"

// CreditSvcFacade defines operations on a user's AI credit balance.
type CreditSvcFacade interface {
	// GetBalance returns the user's remaining AI credits.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Consume atomically spends one credit, returning the remaining balance.
	// It returns apperrors.ErrInsufficientCredits when the balance is zero.
	Consume(ctx context.Context, userID string) (int64, error)
}
