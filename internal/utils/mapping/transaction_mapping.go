package mapping

import (
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/mindscribe/journal_ai_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		UserID:            d.UserID,
		PriceID:           d.PriceID,
		AmountUSD:         d.AmountUSD,
		Credits:           d.Credits,
		CheckoutSessionID: d.CheckoutSessionID,
		Status:            models.TransactionStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		UserID:            m.UserID,
		PriceID:           m.PriceID,
		AmountUSD:         m.AmountUSD,
		Credits:           m.Credits,
		CheckoutSessionID: m.CheckoutSessionID,
		Status:            domain.TransactionStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
