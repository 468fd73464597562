package mapping

import (
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/mindscribe/journal_ai_app/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:    d.JournalID,
		UserID:       d.UserID,
		Title:        d.Title,
		Content:      d.Content,
		TemplateID:   d.TemplateID,
		AISummary:    d.AISummary,
		AIMood:       d.AIMood,
		AIMoodScore:  d.AIMoodScore,
		AISuggestion: d.AISuggestion,
		AIProcessed:  d.AIProcessed,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:    m.JournalID,
		UserID:       m.UserID,
		Title:        m.Title,
		Content:      m.Content,
		TemplateID:   m.TemplateID,
		AISummary:    m.AISummary,
		AIMood:       m.AIMood,
		AIMoodScore:  m.AIMoodScore,
		AISuggestion: m.AISuggestion,
		AIProcessed:  m.AIProcessed,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalSlice converts a slice of model Journals to a slice of domain Journals
func ToDomainJournalSlice(ms []models.Journal) []domain.Journal {
	ds := make([]domain.Journal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournal(m)
	}
	return ds
}
