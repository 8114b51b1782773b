package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"
	openAIModel   = "gpt-4"
)

type OpenAIClient struct {
	apiKey      string
	model       string
	temperature float64
	url         string
	httpClient  *http.Client
}

func NewOpenAIClient(opts Options) *OpenAIClient {
	return &OpenAIClient{
		apiKey:      opts.APIKey,
		model:       opts.model(openAIModel),
		temperature: opts.Temperature,
		url:         opts.url(openAIChatURL),
		httpClient:  opts.httpClient(),
	}
}

// chat types for OpenAI-compatible APIs, shared with Cerebras
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends prompt as a single user message and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	return completeChat(ctx, c.httpClient, "chat", c.url, c.apiKey, chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
}

// completeChat performs one OpenAI-style chat completion round trip. label
// prefixes error messages so callers can tell providers apart.
func completeChat(ctx context.Context, httpClient *http.Client, label, url, apiKey string, chatReq chatRequest) (string, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", label, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create %s request: %w", label, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", label, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", label, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API returned status %d: %s", label, resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal %s response: %w", label, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%s API error: %s", label, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s API returned no choices", label)
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
