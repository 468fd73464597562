package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
	"github.com/mindscribe/journal_ai_app/internal/platform/config"
	"github.com/mindscribe/journal_ai_app/internal/platform/metrics"
)

const checkoutCompletedEvent = "checkout.session.completed"

// eventDedupTTL bounds how long a webhook event id is remembered in Redis.
const eventDedupTTL = 24 * time.Hour

// billingService handles credit purchases: checkout creation and the webhook
// that completes them. Idempotency is enforced by the status transition in the
// repository; Redis only short-circuits obvious redeliveries.
type billingService struct {
	txnRepo  portsrepo.TransactionRepositoryFacade
	checkout portssvc.CheckoutProvider
	verifier portssvc.PaymentEventVerifier
	cfg      *config.Config
	rdb      *redis.Client
}

// NewBillingService creates a new BillingService. rdb may be nil.
func NewBillingService(txnRepo portsrepo.TransactionRepositoryFacade, checkout portssvc.CheckoutProvider, verifier portssvc.PaymentEventVerifier, cfg *config.Config, rdb *redis.Client) portssvc.BillingSvcFacade {
	return &billingService{
		txnRepo:  txnRepo,
		checkout: checkout,
		verifier: verifier,
		cfg:      cfg,
		rdb:      rdb,
	}
}

// Ensure billingService implements the portssvc.BillingSvcFacade interface
var _ portssvc.BillingSvcFacade = (*billingService)(nil)

func (s *billingService) ListCreditPacks(ctx context.Context) []dto.CreditPackResponse {
	packs := make([]dto.CreditPackResponse, len(s.cfg.CreditPacks))
	for i, p := range s.cfg.CreditPacks {
		packs[i] = dto.CreditPackResponse{
			PriceID:   p.PriceID,
			AmountUSD: p.AmountUSD,
			Credits:   p.Credits,
		}
	}
	return packs
}

// CreateCheckout opens a provider checkout session for one credit pack and
// records the purchase as pending. The pack is resolved server-side from the
// price id; amount and credits are never trusted from the client.
func (s *billingService) CreateCheckout(ctx context.Context, userID string, req dto.CreateCheckoutRequest) (*dto.CheckoutResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pack, ok := s.cfg.PackByPriceID(req.PriceID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown price id %s", apperrors.ErrValidation, req.PriceID)
	}

	txnID := uuid.NewString()
	session, err := s.checkout.CreateCheckoutSession(ctx, portssvc.CheckoutParams{
		PackName:    fmt.Sprintf("%d AI Credits", pack.Credits),
		AmountUSD:   pack.AmountUSD,
		Credits:     pack.Credits,
		ReferenceID: txnID,
		SuccessURL:  s.cfg.FrontendBaseURL + "/credits?status=success",
		CancelURL:   s.cfg.FrontendBaseURL + "/credits?status=cancelled",
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:     txnID,
		UserID:            userID,
		PriceID:           pack.PriceID,
		AmountUSD:         pack.AmountUSD,
		Credits:           pack.Credits,
		CheckoutSessionID: session.SessionID,
		Status:            domain.Pending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("Created checkout session", "transaction_id", txnID, "price_id", pack.PriceID)
	return &dto.CheckoutResponse{
		SessionID:   session.SessionID,
		CheckoutURL: session.CheckoutURL,
	}, nil
}

// seenEvent reports whether this webhook event id was already handled
// recently. Redis is a best-effort fast path; when it is down or absent the
// status transition in the repository still guarantees exactly-once grants.
func (s *billingService) seenEvent(ctx context.Context, eventID string) bool {
	if s.rdb == nil || eventID == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, "payment_event:"+eventID).Result()
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Redis event de-dup unavailable", "error", err)
		return false
	}
	return n > 0
}

// markEventHandled records the event id in Redis once the grant has been
// applied. Marking before the repository succeeds would make the provider's
// retry a no-op and lose the purchase.
func (s *billingService) markEventHandled(ctx context.Context, eventID string) {
	if s.rdb == nil || eventID == "" {
		return
	}
	if err := s.rdb.Set(ctx, "payment_event:"+eventID, 1, eventDedupTTL).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Redis event de-dup unavailable", "error", err)
	}
}

// HandlePaymentEvent verifies and applies a payment provider webhook.
func (s *billingService) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.verifier.VerifyEvent(payload, signature)
	if err != nil {
		metrics.PaymentEvents.WithLabelValues("rejected").Inc()
		return err
	}

	if event.Type != checkoutCompletedEvent {
		logger.Info("Ignoring payment event", "type", event.Type)
		metrics.PaymentEvents.WithLabelValues("ignored").Inc()
		return nil
	}

	if event.CheckoutSessionID == "" {
		metrics.PaymentEvents.WithLabelValues("rejected").Inc()
		return fmt.Errorf("%w: checkout completed event without session id", apperrors.ErrValidation)
	}

	if s.seenEvent(ctx, event.EventID) {
		logger.Info("Duplicate payment event, already handled", "event_id", event.EventID)
		metrics.PaymentEvents.WithLabelValues("duplicate").Inc()
		return nil
	}

	txn, err := s.txnRepo.CompleteCheckoutSession(ctx, event.CheckoutSessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Redelivery of a session we already completed; the grant
			// happened exactly once on the first delivery.
			logger.Info("Checkout session already completed", "session_id", event.CheckoutSessionID)
			metrics.PaymentEvents.WithLabelValues("duplicate").Inc()
			s.markEventHandled(ctx, event.EventID)
			return nil
		}
		metrics.PaymentEvents.WithLabelValues("failed").Inc()
		return err
	}

	s.markEventHandled(ctx, event.EventID)
	metrics.PaymentEvents.WithLabelValues("completed").Inc()
	metrics.CreditsGranted.Add(float64(txn.Credits))
	logger.Info("Completed credit purchase",
		"transaction_id", txn.TransactionID,
		"user_id", txn.UserID,
		"credits", txn.Credits,
	)
	return nil
}

func (s *billingService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.txnRepo.ListTransactionsByUser(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListTransactionsResponse(txns, nextToken)
	return &resp, nil
}
