package services

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CheckoutParams carries everything the payment provider needs to open a
// hosted checkout page for one credit pack.
type CheckoutParams struct {
	PackName    string
	AmountUSD   decimal.Decimal
	Credits     int64
	ReferenceID string // Our transaction id, echoed back by the provider
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the provider-side session created for a purchase.
type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// CheckoutProvider is the outbound port to the payment provider's checkout API.
type CheckoutProvider interface {
	// CreateCheckoutSession opens a hosted checkout session.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
}

// PaymentEvent is a verified webhook event from the payment provider.
type PaymentEvent struct {
	EventID           string
	Type              string
	CheckoutSessionID string
}

// PaymentEventVerifier is the outbound port that authenticates webhook payloads.
type PaymentEventVerifier interface {
	// VerifyEvent checks the payload signature and decodes the event.
	// A bad signature returns apperrors.ErrSignatureInvalid.
	VerifyEvent(payload []byte, signature string) (*PaymentEvent, error)
}

// BillingSvcFacade combines all purchase-related service operations.
type BillingSvcFacade interface {
	// ListCreditPacks returns the purchasable credit packs.
	ListCreditPacks(ctx context.Context) []dto.CreditPackResponse

	// CreateCheckout records a pending purchase and opens a provider checkout session.
	CreateCheckout(ctx context.Context, userID string, req dto.CreateCheckoutRequest) (*dto.CheckoutResponse, error)

	// HandlePaymentEvent verifies and applies a payment provider webhook,
	// completing the matching purchase and granting its credits exactly once.
	HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error

	// ListTransactions retrieves a paginated list of the user's purchases, newest first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
