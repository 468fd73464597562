package services

import (
	"github.com/go-redis/redis/v8"

	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, chatModel portssvc.ChatModel, checkout portssvc.CheckoutProvider, verifier portssvc.PaymentEventVerifier, rdb *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Credit = NewCreditService(repos.UserRepo)
	container.Insight = NewInsightService(chatModel, cfg.AITimeout)
	container.Journal = NewJournalService(repos.JournalRepo, container.Credit, container.Insight)
	container.Billing = NewBillingService(repos.TransactionRepo, checkout, verifier, cfg, rdb)

	return container
}
