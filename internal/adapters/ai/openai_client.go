// Package ai adapts the OpenAI chat completion API to the ChatModel port.
package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
)

// OpenAIClient sends single-turn prompts to an OpenAI chat model.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates the adapter for the given API key and model name.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends the prompt and returns the model's reply text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", apperrors.ErrUpstreamFailure, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: chat completion returned no choices", apperrors.ErrUpstreamFailure)
	}
	return resp.Choices[0].Message.Content, nil
}
