package services

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/mindscribe/journal_ai_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByProviderID retrieves a user by their auth provider subject.
	GetUserByProviderID(ctx context.Context, providerID string) (*domain.User, error)
}

// UserProvisioningSvc defines operations driven by identity provider webhooks
type UserProvisioningSvc interface {
	// ProvisionUser creates a local user record from an identity provider event.
	// It returns apperrors.ErrMissingPrimaryEmail when the event carries no
	// usable primary email and apperrors.ErrDuplicate on redelivery.
	ProvisionUser(ctx context.Context, data dto.IdentityEventData) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserProvisioningSvc
}
