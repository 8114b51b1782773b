package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "LLM_PROVIDER", "LLM_MODEL", "LLM_TEMPERATURE", "LLM_TIMEOUT",
		"LLM_BASE_URL", "AGENT_NAME", "SYSTEM_PROMPT", "LOG_LEVEL", "API_KEY", "AGENT_IDLE_TTL",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "CEREBRAS_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, "openai", LLMProvider())
	assert.Equal(t, "", LLMModel())
	assert.Equal(t, 0.7, LLMTemperature())
	assert.Equal(t, 60*time.Second, LLMTimeout())
	assert.Equal(t, "", LLMBaseURL())
	assert.Equal(t, "TaskBot", AgentName())
	assert.Equal(t, "", SystemPrompt())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "", APIKey())
	assert.Equal(t, 24*time.Hour, AgentIdleTTL())
}

func TestAgentIdleTTL(t *testing.T) {
	t.Setenv("AGENT_IDLE_TTL", "0")
	assert.Equal(t, time.Duration(0), AgentIdleTTL())

	t.Setenv("AGENT_IDLE_TTL", "30m")
	assert.Equal(t, 30*time.Minute, AgentIdleTTL())

	t.Setenv("AGENT_IDLE_TTL", "forever")
	assert.Equal(t, 24*time.Hour, AgentIdleTTL())
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("AGENT_NAME", "Planner")
	t.Setenv("LOG_LEVEL", "debug")

	assert.Equal(t, ":9090", ServerAddr())
	assert.Equal(t, "gpt-4o", LLMModel())
	assert.Equal(t, 0.2, LLMTemperature())
	assert.Equal(t, "Planner", AgentName())
	assert.Equal(t, "debug", LogLevel())
}

func TestLLMTimeout(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 60 * time.Second},
		{"90s", 90 * time.Second},
		{"2m", 2 * time.Minute},
		{"15", 15 * time.Second},
		{"-5s", 60 * time.Second},
		{"soon", 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("LLM_TIMEOUT", tt.raw)
			assert.Equal(t, tt.want, LLMTimeout())
		})
	}
}

func TestLLMAPIKey_PerProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "oa")
	t.Setenv("ANTHROPIC_API_KEY", "an")
	t.Setenv("GEMINI_API_KEY", "ge")
	t.Setenv("CEREBRAS_API_KEY", "ce")

	tests := map[string]string{
		"":          "oa",
		"openai":    "oa",
		"anthropic": "an",
		"gemini":    "ge",
		"cerebras":  "ce",
		"mock":      "",
	}
	for provider, want := range tests {
		t.Setenv("LLM_PROVIDER", provider)
		assert.Equal(t, want, LLMAPIKey(), "provider %q", provider)
	}
}

func TestLoad_EnvFileAndSecret(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("AGENT_NAME=FromFile\nLLM_PROVIDER=anthropic\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("ANTHROPIC_API_KEY=sk-secret\n"), 0o600))

	// godotenv never overrides variables that are already set.
	os.Unsetenv("AGENT_NAME")
	os.Unsetenv("LLM_PROVIDER")
	os.Unsetenv("ANTHROPIC_API_KEY")
	t.Setenv("BDI_ENV", envFile)

	require.NoError(t, Load())
	t.Cleanup(func() {
		os.Unsetenv("AGENT_NAME")
		os.Unsetenv("LLM_PROVIDER")
		os.Unsetenv("ANTHROPIC_API_KEY")
	})

	assert.Equal(t, "FromFile", AgentName())
	assert.Equal(t, "anthropic", LLMProvider())
	assert.Equal(t, "sk-secret", LLMAPIKey())
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("BDI_ENV", filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, Load())
}
