package utils

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type OllamaTextClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

func NewOllamaTextClient(baseURL, model string) *OllamaTextClient {
	if model == "" {
		model = "llama2"
	}
	return &OllamaTextClient{
		// No client timeout; the stream is bounded by the caller's context.
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func (c *OllamaTextClient) Provider() string { return "ollama" }

// GenerateText posts to /api/generate and concatenates the NDJSON chunks
// until one carries done=true.
func (c *OllamaTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaGenerateRequest{Model: c.model, Prompt: prompt, Stream: true})
	if err != nil {
		return "", fmt.Errorf("ollama encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("ollama %s: %w", resp.Status, ErrUpstreamStatus)
	}

	var sb strings.Builder
	done := false
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var chunk ollamaChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return "", fmt.Errorf("ollama chunk decode: %w", err)
		}
		if chunk.Error != "" {
			return "", fmt.Errorf("ollama: %s: %w", chunk.Error, ErrGenerationFailed)
		}
		sb.WriteString(chunk.Response)
		if chunk.Done {
			done = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("ollama stream read: %w", err)
	}
	if !done {
		return "", ErrIncompleteStream
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyGeneration
	}
	return sb.String(), nil
}
