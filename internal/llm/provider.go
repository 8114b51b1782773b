package llm

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Harshitk-cp/bdi/internal/domain"
)

// Provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderCerebras  = "cerebras"
	ProviderMock      = "mock"
)

// DefaultTemperature is the sampling temperature when none is configured.
const DefaultTemperature = 0.7

// Options configures a reasoning client. Zero values fall back to the
// provider's defaults. Model and temperature are passed through unvalidated.
type Options struct {
	APIKey      string
	Model       string
	Temperature float64
	// BaseURL overrides the provider endpoint, e.g. for a proxy or a test server.
	BaseURL string
	// Timeout bounds each HTTP round trip; zero means no timeout.
	Timeout time.Duration
}

func (o Options) model(def string) string {
	if o.Model != "" {
		return o.Model
	}
	return def
}

func (o Options) url(def string) string {
	if o.BaseURL != "" {
		return strings.TrimRight(o.BaseURL, "/")
	}
	return def
}

func (o Options) httpClient() *http.Client {
	return &http.Client{Timeout: o.Timeout}
}

// NewClient creates a reasoning client based on the provider name.
// Returns an error if the provider is unknown or the API key is empty (except for mock).
func NewClient(provider string, opts Options) (domain.ReasoningClient, error) {
	switch provider {
	case ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(opts), nil

	case ProviderAnthropic:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		return NewAnthropicClient(opts), nil

	case ProviderGemini:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiClient(opts), nil

	case ProviderCerebras:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("CEREBRAS_API_KEY is required for Cerebras provider")
		}
		return NewCerebrasClient(opts), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: openai, anthropic, gemini, cerebras, mock)", provider)
	}
}
