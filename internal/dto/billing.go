package dto

import (
	"time"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCheckoutRequest defines the data needed to start a credit purchase.
type CreateCheckoutRequest struct {
	PriceID string `json:"priceID" binding:"required"`
}

// CheckoutResponse returns the provider-hosted checkout URL for a new purchase.
type CheckoutResponse struct {
	SessionID   string `json:"sessionID"`
	CheckoutURL string `json:"checkoutURL"`
}

// CreditPackResponse describes one purchasable credit pack.
type CreditPackResponse struct {
	PriceID   string          `json:"priceID"`
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Credits   int64           `json:"credits"`
}

// TransactionResponse defines the data returned for a credit purchase.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	PriceID       string          `json:"priceID"`
	AmountUSD     decimal.Decimal `json:"amountUSD"`
	Credits       int64           `json:"credits"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for listing purchases.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of credit purchases.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		PriceID:       t.PriceID,
		AmountUSD:     t.AmountUSD,
		Credits:       t.Credits,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction plus a pagination token to ListTransactionsResponse DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{
		Transactions: responses,
		NextToken:    nextToken,
	}
}
