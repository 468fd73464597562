package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/services"
)

func promptContaining(fragment string) interface{} {
	return mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, fragment)
	})
}

func TestInsightService_GenerateInsights_Success(t *testing.T) {
	model := new(MockChatModel)
	svc := services.NewInsightService(model, 5*time.Second)

	content := "Spent the morning hiking and felt great."
	model.On("Complete", mock.Anything, promptContaining("Summarize the following journal entry")).
		Return("A refreshing morning hike.", nil).Once()
	model.On("Complete", mock.Anything, promptContaining("Analyze the emotional tone")).
		Return("Mood: Energized, Score: 9", nil).Once()
	model.On("Complete", mock.Anything, promptContaining("Give a short, friendly tip")).
		Return("Keep making time for the outdoors.", nil).Once()

	insight, err := svc.GenerateInsights(context.Background(), content)

	require.NoError(t, err)
	assert.Equal(t, "A refreshing morning hike.", insight.Summary)
	assert.Equal(t, "Energized", insight.Mood)
	assert.Equal(t, 9, insight.MoodScore)
	assert.Equal(t, "Keep making time for the outdoors.", insight.Suggestion)

	model.AssertExpectations(t)
}

func TestInsightService_GenerateInsights_MoodFallback(t *testing.T) {
	model := new(MockChatModel)
	svc := services.NewInsightService(model, 5*time.Second)

	model.On("Complete", mock.Anything, promptContaining("Summarize the following journal entry")).
		Return("Summary.", nil).Once()
	// The model ignored the requested format entirely.
	model.On("Complete", mock.Anything, promptContaining("Analyze the emotional tone")).
		Return("I'd say the writer seems fairly upbeat overall!", nil).Once()
	model.On("Complete", mock.Anything, promptContaining("Give a short, friendly tip")).
		Return("Tip.", nil).Once()

	insight, err := svc.GenerateInsights(context.Background(), "Some entry")

	require.NoError(t, err)
	assert.Equal(t, "Neutral", insight.Mood)
	assert.Equal(t, 5, insight.MoodScore)
}

func TestInsightService_GenerateInsights_ProviderFailure(t *testing.T) {
	model := new(MockChatModel)
	svc := services.NewInsightService(model, 5*time.Second)

	model.On("Complete", mock.Anything, mock.AnythingOfType("string")).
		Return("", apperrors.ErrUpstreamFailure)

	insight, err := svc.GenerateInsights(context.Background(), "Some entry")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	assert.Nil(t, insight)
}
