package services

import (
	"context"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
)

// ChatModel is the outbound port to a chat-completion AI provider.
type ChatModel interface {
	// Complete sends a single-turn prompt and returns the model's reply text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// InsightSvcFacade generates AI observations about journal content.
type InsightSvcFacade interface {
	// GenerateInsights produces the summary, mood and suggestion for the given
	// journal content. Provider failures surface as apperrors.ErrUpstreamFailure.
	GenerateInsights(ctx context.Context, content string) (*domain.Insight, error)
}
