package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
	"github.com/mindscribe/journal_ai_app/internal/platform/metrics"
)

const (
	summaryPromptFmt    = "Summarize the following journal entry in 2-3 concise sentences:\n\n%s"
	moodPromptFmt       = "Analyze the emotional tone of this journal entry and return in this exact format: \"Mood: [single word or short phrase], Score: [number 1-10 where 10 is most positive]\"\n\n %s"
	suggestionPromptFmt = "Give a short, friendly tip or reflection based on this journal entry (max 2 sentences):\n\n%s"

	defaultMood      = "Neutral"
	defaultMoodScore = 5
)

var moodPattern = regexp.MustCompile(`Mood: (.*?), Score: (\d+)`)

// insightService generates the summary, mood and suggestion for journal content.
type insightService struct {
	model   portssvc.ChatModel
	timeout time.Duration
}

// NewInsightService creates a new InsightService backed by the given chat model.
func NewInsightService(model portssvc.ChatModel, timeout time.Duration) portssvc.InsightSvcFacade {
	return &insightService{
		model:   model,
		timeout: timeout,
	}
}

// Ensure insightService implements the portssvc.InsightSvcFacade interface
var _ portssvc.InsightSvcFacade = (*insightService)(nil)

// parseMood extracts the mood and score from the model reply. A reply that
// does not match the expected format falls back to a neutral mood.
func parseMood(reply string) (string, int) {
	match := moodPattern.FindStringSubmatch(reply)
	if match == nil {
		return defaultMood, defaultMoodScore
	}
	score, err := strconv.Atoi(match[2])
	if err != nil {
		return defaultMood, defaultMoodScore
	}
	if score < 1 {
		score = 1
	} else if score > 10 {
		score = 10
	}
	return match[1], score
}

// GenerateInsights runs the three model calls concurrently and assembles the result.
func (s *insightService) GenerateInsights(ctx context.Context, content string) (*domain.Insight, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	insight := &domain.Insight{}

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		summary, err := s.model.Complete(gctx, fmt.Sprintf(summaryPromptFmt, content))
		if err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
		insight.Summary = summary
		return nil
	})
	g.Go(func() error {
		reply, err := s.model.Complete(gctx, fmt.Sprintf(moodPromptFmt, content))
		if err != nil {
			return fmt.Errorf("generate mood: %w", err)
		}
		insight.Mood, insight.MoodScore = parseMood(reply)
		return nil
	})
	g.Go(func() error {
		suggestion, err := s.model.Complete(gctx, fmt.Sprintf(suggestionPromptFmt, content))
		if err != nil {
			return fmt.Errorf("generate suggestion: %w", err)
		}
		insight.Suggestion = suggestion
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.AIRuns.WithLabelValues("failure").Inc()
		logger.Error("AI analysis failed", "error", err)
		return nil, err
	}

	metrics.AIRuns.WithLabelValues("success").Inc()
	metrics.AIDuration.Observe(time.Since(start).Seconds())
	return insight, nil
}
