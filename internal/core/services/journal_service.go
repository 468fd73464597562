package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
	"github.com/mindscribe/journal_ai_app/internal/platform/metrics"
)

// journalService provides journal entry CRUD and the AI analysis workflow.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	creditSvc   portssvc.CreditSvcFacade
	insightSvc  portssvc.InsightSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, creditSvc portssvc.CreditSvcFacade, insightSvc portssvc.InsightSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		creditSvc:   creditSvc,
		insightSvc:  insightSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// findOwnedJournal loads the entry and checks ownership. Entries owned by
// other users look exactly like missing ones to the caller.
func (s *journalService) findOwnedJournal(ctx context.Context, journalID, requestingUserID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.UserID != requestingUserID {
		return nil, apperrors.ErrNotFound
	}
	return journal, nil
}

// processWithAI spends one credit and stores the generated insights on the
// entry. The credit is not refunded when the provider call fails; the entry
// simply stays unprocessed and a later analyze call spends a fresh credit.
func (s *journalService) processWithAI(ctx context.Context, journal *domain.Journal) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.creditSvc.Consume(ctx, journal.UserID); err != nil {
		return err
	}

	insight, err := s.insightSvc.GenerateInsights(ctx, journal.Content)
	if err != nil {
		logger.Warn("AI analysis failed after credit consumption, entry stays unprocessed",
			"journal_id", journal.JournalID, "error", err)
		return err
	}

	if err := s.journalRepo.SaveInsights(ctx, journal.JournalID, *insight); err != nil {
		return fmt.Errorf("failed to persist insights for journal %s: %w", journal.JournalID, err)
	}

	journal.AISummary = insight.Summary
	journal.AIMood = insight.Mood
	journal.AIMoodScore = insight.MoodScore
	journal.AISuggestion = insight.Suggestion
	journal.AIProcessed = true
	return nil
}

// tryProcessWithAI runs AI analysis on a best-effort basis after create and
// update. An empty balance or provider failure never fails the write itself.
func (s *journalService) tryProcessWithAI(ctx context.Context, journal *domain.Journal) {
	if journal.Content == "" {
		return
	}
	if err := s.processWithAI(ctx, journal); err != nil {
		logger := middleware.GetLoggerFromCtx(ctx)
		if errors.Is(err, apperrors.ErrInsufficientCredits) {
			logger.Info("Skipping AI analysis, no credits left", "journal_id", journal.JournalID)
			return
		}
		logger.Warn("AI analysis skipped", "journal_id", journal.JournalID, "error", err)
	}
}

func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	if req.TemplateID != "" {
		if _, ok := domain.TemplateByID(req.TemplateID); !ok {
			return nil, fmt.Errorf("%w: unknown template %s", apperrors.ErrValidation, req.TemplateID)
		}
	}

	now := time.Now().UTC()
	journal := domain.Journal{
		JournalID:  uuid.NewString(),
		UserID:     creatorUserID,
		Title:      req.Title,
		Content:    req.Content,
		TemplateID: req.TemplateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		return nil, err
	}
	metrics.EntriesCreated.Inc()

	s.tryProcessWithAI(ctx, &journal)

	return &journal, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string, requestingUserID string) (*domain.Journal, error) {
	return s.findOwnedJournal(ctx, journalID, requestingUserID)
}

func (s *journalService) ListJournals(ctx context.Context, userID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	journals, nextToken, err := s.journalRepo.ListJournalsByUser(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListJournalsResponse(journals, nextToken)
	return &resp, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error) {
	journal, err := s.findOwnedJournal(ctx, journalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	// Only a content change invalidates the stored analysis. Title or
	// template edits keep it and cost nothing.
	contentChanged := req.Content != nil && *req.Content != journal.Content

	if req.Title != nil {
		journal.Title = *req.Title
	}
	if req.Content != nil {
		journal.Content = *req.Content
	}
	if req.TemplateID != nil {
		if *req.TemplateID != "" {
			if _, ok := domain.TemplateByID(*req.TemplateID); !ok {
				return nil, fmt.Errorf("%w: unknown template %s", apperrors.ErrValidation, *req.TemplateID)
			}
		}
		journal.TemplateID = *req.TemplateID
	}
	journal.LastUpdatedAt = time.Now().UTC()

	if !contentChanged {
		if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
			return nil, err
		}
		return journal, nil
	}

	if err := s.journalRepo.UpdateJournalAndClearInsights(ctx, *journal); err != nil {
		return nil, err
	}
	journal.AISummary = ""
	journal.AIMood = ""
	journal.AIMoodScore = 0
	journal.AISuggestion = ""
	journal.AIProcessed = false

	s.tryProcessWithAI(ctx, journal)

	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, journalID string, requestingUserID string) error {
	if _, err := s.findOwnedJournal(ctx, journalID, requestingUserID); err != nil {
		return err
	}
	return s.journalRepo.DeleteJournal(ctx, journalID)
}

// AnalyzeJournal runs AI analysis on demand. Unlike the create and update
// paths, failures here surface to the caller.
func (s *journalService) AnalyzeJournal(ctx context.Context, journalID string, requestingUserID string) (*domain.Journal, error) {
	journal, err := s.findOwnedJournal(ctx, journalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	// An already processed entry costs nothing to re-read.
	if journal.AIProcessed {
		return journal, nil
	}

	if journal.Content == "" {
		return nil, fmt.Errorf("%w: cannot analyze an empty entry", apperrors.ErrValidation)
	}

	if err := s.processWithAI(ctx, journal); err != nil {
		return nil, err
	}

	return journal, nil
}
