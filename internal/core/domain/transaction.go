package domain

import "github.com/shopspring/decimal"

// TransactionStatus indicates the state of a credit purchase.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Completed TransactionStatus = "COMPLETED"
)

// Transaction represents a credit pack purchase made through the payment provider.
// A row is created as Pending when checkout starts and flips to Completed
// exactly once when the provider's webhook confirms payment.
type Transaction struct {
	TransactionID     string            `json:"transactionID"` // Primary Key (UUID)
	UserID            string            `json:"userID"`        // FK -> User.userID
	PriceID           string            `json:"priceID"`       // Credit pack identifier
	AmountUSD         decimal.Decimal   `json:"amountUSD"`     // Pack price; precise decimal type
	Credits           int64             `json:"credits"`       // Credits granted on completion
	CheckoutSessionID string            `json:"checkoutSessionID"`
	Status            TransactionStatus `json:"status"` // Default: Pending
	AuditFields
}
