package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by BDI_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("BDI_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func CerebrasAPIKey() string {
	return os.Getenv("CEREBRAS_API_KEY")
}

// LLMProvider returns the configured LLM provider.
// Defaults to "openai" if not set.
// Valid values: openai, anthropic, gemini, cerebras, mock
func LLMProvider() string {
	p := os.Getenv("LLM_PROVIDER")
	if p == "" {
		return "openai"
	}
	return p
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "gemini":
		return GeminiAPIKey()
	case "cerebras":
		return CerebrasAPIKey()
	case "mock":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

// LLMModel returns the model identifier. Empty means the provider default.
func LLMModel() string {
	return os.Getenv("LLM_MODEL")
}

// LLMTemperature returns the sampling temperature.
// Defaults to 0.7 if not set or unparseable.
func LLMTemperature() float64 {
	t, err := strconv.ParseFloat(os.Getenv("LLM_TEMPERATURE"), 64)
	if err != nil || t < 0 {
		return 0.7
	}
	return t
}

// LLMTimeout bounds each call to the reasoning service.
// Accepts a Go duration ("90s") or whole seconds ("90"). Defaults to 60s.
func LLMTimeout() time.Duration {
	raw := os.Getenv("LLM_TIMEOUT")
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 60 * time.Second
}

// LLMBaseURL overrides the provider endpoint (proxies, self-hosted gateways).
func LLMBaseURL() string {
	return os.Getenv("LLM_BASE_URL")
}

// AgentName returns the name of the interactive agent.
// Defaults to "TaskBot" if not set.
func AgentName() string {
	name := os.Getenv("AGENT_NAME")
	if name == "" {
		return "TaskBot"
	}
	return name
}

// SystemPrompt returns the configured system prompt. Empty means the
// default prompt derived from the agent name.
func SystemPrompt() string {
	return os.Getenv("SYSTEM_PROMPT")
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// APIKey returns the bearer token required on /v1 routes of `bdi serve`.
// Empty disables authentication.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// AgentIdleTTL is how long a hosted agent may go unused before `bdi serve`
// evicts it. Defaults to 24h; "0" disables eviction.
func AgentIdleTTL() time.Duration {
	raw := os.Getenv("AGENT_IDLE_TTL")
	if raw == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 24 * time.Hour
	}
	return d
}
