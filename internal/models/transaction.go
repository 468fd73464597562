package models

import "github.com/shopspring/decimal"

// TransactionStatus indicates the state of a credit purchase.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Completed TransactionStatus = "COMPLETED"
)

// Transaction represents a credit purchase row as stored in the database.
type Transaction struct {
	TransactionID     string            `db:"transaction_id"`
	UserID            string            `db:"user_id"`
	PriceID           string            `db:"price_id"`
	AmountUSD         decimal.Decimal   `db:"amount_usd"`
	Credits           int64             `db:"credits"`
	CheckoutSessionID string            `db:"checkout_session_id"`
	Status            TransactionStatus `db:"status"`
	AuditFields
}
