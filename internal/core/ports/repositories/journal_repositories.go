package repositories

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournalsByUser retrieves a paginated list of journals for a user using token-based pagination.
	// Entries come back newest first. It returns the journals, a token for the next page, and an error.
	ListJournalsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a new journal entry.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournal updates the user-editable fields of a journal entry,
	// leaving its AI columns untouched.
	UpdateJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournalAndClearInsights updates the user-editable fields and
	// clears the AI columns in the same statement, so stale analysis of the
	// old content is never served.
	UpdateJournalAndClearInsights(ctx context.Context, journal domain.Journal) error

	// SaveInsights stores the AI analysis results on a journal entry and marks it processed.
	SaveInsights(ctx context.Context, journalID string, insight domain.Insight) error

	// DeleteJournal removes a journal entry permanently.
	DeleteJournal(ctx context.Context, journalID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
