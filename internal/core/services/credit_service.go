package services

import (
	"context"
	"fmt"

	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/platform/metrics"
)

// creditService exposes the AI credit balance. The actual atomic decrement
// lives in the repository so concurrent spends are settled by the database.
type creditService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewCreditService creates a new CreditService.
func NewCreditService(userRepo portsrepo.UserRepositoryFacade) portssvc.CreditSvcFacade {
	return &creditService{userRepo: userRepo}
}

// Ensure creditService implements the portssvc.CreditSvcFacade interface
var _ portssvc.CreditSvcFacade = (*creditService)(nil)

func (s *creditService) GetBalance(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}
	return user.Credits, nil
}

func (s *creditService) Consume(ctx context.Context, userID string) (int64, error) {
	remaining, err := s.userRepo.ConsumeCredit(ctx, userID)
	if err != nil {
		return 0, err
	}
	metrics.CreditsConsumed.Inc()
	return remaining, nil
}
