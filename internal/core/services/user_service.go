package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
)

// userService resolves and provisions users from the hosted auth provider.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by provider ID in service: %w", err)
	}
	return user, nil
}

// ProvisionUser creates a local user record from an identity provider event.
// New users start with zero credits; the balance only moves through purchases
// and AI analysis.
func (s *userService) ProvisionUser(ctx context.Context, data dto.IdentityEventData) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email, ok := data.PrimaryEmail()
	if !ok {
		logger.Warn("Identity event without a primary email", "provider_id", data.ID)
		return nil, apperrors.ErrMissingPrimaryEmail
	}

	name := data.FirstName
	if data.LastName != "" {
		if name != "" {
			name += " "
		}
		name += data.LastName
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:     uuid.NewString(),
		ProviderID: data.ID,
		Email:      email,
		Name:       name,
		Credits:    0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Provisioned user from identity event", "user_id", user.UserID, "provider_id", data.ID)
	return &user, nil
}
