package services

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/mindscribe/journal_ai_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal entry owned by the requesting user.
	GetJournalByID(ctx context.Context, journalID string, requestingUserID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of the user's journal entries, newest first.
	ListJournals(ctx context.Context, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal persists a new journal entry and, when content is present
	// and credits allow, runs AI analysis on it.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)

	// UpdateJournal updates a journal entry's user-editable fields. Any stored
	// AI analysis is invalidated and re-run when credits allow.
	UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error)

	// DeleteJournal removes a journal entry permanently.
	DeleteJournal(ctx context.Context, journalID string, requestingUserID string) error
}

// JournalAnalysisSvc defines on-demand AI analysis of journal entries
type JournalAnalysisSvc interface {
	// AnalyzeJournal spends one credit and generates AI insights for an
	// unprocessed entry. An already processed entry is returned as is without
	// spending a credit.
	AnalyzeJournal(ctx context.Context, journalID string, requestingUserID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalAnalysisSvc
}
