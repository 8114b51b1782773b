package llm

import (
	"context"
	"net/http"
)

const (
	cerebrasAPIURL = "https://api.cerebras.ai/v1/chat/completions"
	cerebrasModel  = "llama-3.3-70b"
)

type CerebrasClient struct {
	apiKey      string
	model       string
	temperature float64
	url         string
	httpClient  *http.Client
}

func NewCerebrasClient(opts Options) *CerebrasClient {
	return &CerebrasClient{
		apiKey:      opts.APIKey,
		model:       opts.model(cerebrasModel),
		temperature: opts.Temperature,
		url:         opts.url(cerebrasAPIURL),
		httpClient:  opts.httpClient(),
	}
}

// Complete uses the OpenAI-compatible chat format Cerebras exposes.
func (c *CerebrasClient) Complete(ctx context.Context, prompt string) (string, error) {
	return completeChat(ctx, c.httpClient, "cerebras", c.url, c.apiKey, chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
}
