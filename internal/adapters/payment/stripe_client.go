// Package payment adapts the Stripe checkout and webhook APIs to the billing ports.
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
)

var decimalHundred = decimal.NewFromInt(100)

// StripeClient implements the CheckoutProvider and PaymentEventVerifier ports.
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

// NewStripeClient creates the adapter for the given API key and webhook signing secret.
func NewStripeClient(apiKey, webhookSecret string) *StripeClient {
	return &StripeClient{
		api:           client.New(apiKey, nil),
		webhookSecret: webhookSecret,
	}
}

// CreateCheckoutSession opens a hosted checkout session for one credit pack.
func (s *StripeClient) CreateCheckoutSession(ctx context.Context, params portssvc.CheckoutParams) (*portssvc.CheckoutSession, error) {
	// Stripe wants the amount in cents.
	unitAmount := params.AmountUSD.Mul(decimalHundred).IntPart()

	sessionParams := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.PackName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(params.SuccessURL),
		CancelURL:         stripe.String(params.CancelURL),
		ClientReferenceID: stripe.String(params.ReferenceID),
	}

	session, err := s.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", apperrors.ErrUpstreamFailure, err)
	}

	return &portssvc.CheckoutSession{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// VerifyEvent checks the payload signature and decodes the event.
func (s *StripeClient) VerifyEvent(payload []byte, signature string) (*portssvc.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSignatureInvalid, err)
	}

	verified := &portssvc.PaymentEvent{
		EventID: event.ID,
		Type:    string(event.Type),
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: unmarshal checkout session: %v", apperrors.ErrValidation, err)
		}
		verified.CheckoutSessionID = session.ID
	}

	return verified, nil
}
