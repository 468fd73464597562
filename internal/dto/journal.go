package dto

import (
	"time"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// CreateJournalRequest defines the data needed to create a journal entry.
type CreateJournalRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"max=50000"`
	TemplateID string `json:"templateID" binding:"omitempty,journaltemplate"`
}

// UpdateJournalRequest defines the data allowed for updating a journal entry.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateJournalRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Content    *string `json:"content" binding:"omitempty,max=50000"`
	TemplateID *string `json:"templateID" binding:"omitempty,journaltemplate"`
}

// ListJournalsParams defines query parameters for listing journal entries.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// InsightResponse defines the AI analysis data returned with a journal entry.
type InsightResponse struct {
	Summary    string `json:"summary"`
	Mood       string `json:"mood"`
	MoodScore  int    `json:"moodScore"`
	Suggestion string `json:"suggestion"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID     string           `json:"journalID"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	TemplateID    string           `json:"templateID,omitempty"`
	Insight       *InsightResponse `json:"insight,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ListJournalsResponse wraps a page of journal entries.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:     j.JournalID,
		Title:         j.Title,
		Content:       j.Content,
		TemplateID:    j.TemplateID,
		CreatedAt:     j.CreatedAt,
		LastUpdatedAt: j.LastUpdatedAt,
	}
	if j.AIProcessed {
		resp.Insight = &InsightResponse{
			Summary:    j.AISummary,
			Mood:       j.AIMood,
			MoodScore:  j.AIMoodScore,
			Suggestion: j.AISuggestion,
		}
	}
	return resp
}

// ToListJournalsResponse converts a slice of domain.Journal plus a pagination token to ListJournalsResponse DTO.
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) ListJournalsResponse {
	responses := make([]JournalResponse, len(journals))
	for i, j := range journals {
		responses[i] = ToJournalResponse(&j)
	}
	return ListJournalsResponse{
		Journals:  responses,
		NextToken: nextToken,
	}
}
