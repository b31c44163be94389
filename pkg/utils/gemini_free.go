package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiTextClient streams free text from a Gemini model.
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

func NewGeminiTextClient(ctx context.Context, apiKey, model string) (*GeminiTextClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiTextClient{client: client, model: model}, nil
}

func (c *GeminiTextClient) Provider() string { return "gemini" }

func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)

	iter := m.GenerateContentStream(ctx, genai.Text(prompt))
	return collectGeminiStream(iter.Next)
}

// collectGeminiStream drains a response iterator. A candidate with a finish
// reason marks the stream complete; iterator.Done without one is treated as
// a truncated answer.
func collectGeminiStream(next func() (*genai.GenerateContentResponse, error)) (string, error) {
	var sb strings.Builder
	finished := false
	for {
		resp, err := next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("gemini stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.FinishReason != genai.FinishReasonUnspecified {
				finished = true
			}
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
				}
			}
		}
	}
	if !finished {
		return "", ErrIncompleteStream
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyGeneration
	}
	return sb.String(), nil
}

// Close closes the Gemini client
func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
