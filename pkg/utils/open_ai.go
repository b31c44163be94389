package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) (*OpenAITextClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}
	return newOpenAITextClient(openai.DefaultConfig(apiKey), model), nil
}

func newOpenAITextClient(cfg openai.ClientConfig, model string) *OpenAITextClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAITextClient) Provider() string { return "openai" }

func (c *OpenAITextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	})
	if err != nil {
		return "", fmt.Errorf("openai stream: %w", err)
	}
	defer stream.Close()

	var sb strings.Builder
	finished := false
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("openai stream recv: %w", err)
		}
		for _, choice := range chunk.Choices {
			sb.WriteString(choice.Delta.Content)
			if choice.FinishReason != "" {
				finished = true
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
