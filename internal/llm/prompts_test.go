package llm

import (
	"strings"
	"testing"
)

func TestBuildReasoningPrompt(t *testing.T) {
	system := "You are a helpful task management agent."
	context := "\nCurrent State:\nBELIEFS: {}\n"
	perception := "User says: I need a break"

	got := BuildReasoningPrompt(system, context, perception)

	if !strings.HasPrefix(got, system) {
		t.Errorf("prompt should start with the system prompt, got %q", got[:40])
	}
	for _, want := range []string{
		context,
		"NEW PERCEPTION: " + perception,
		`"belief_updates"`,
		`"new_intentions"`,
		`"reasoning"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if again := BuildReasoningPrompt(system, context, perception); again != got {
		t.Error("prompt must be deterministic for identical inputs")
	}
}

func TestDefaultSystemPrompt(t *testing.T) {
	got := DefaultSystemPrompt("TaskBot")
	want := "You are TaskBot, a BDI agent. Reason about beliefs, desires, and intentions."
	if got != want {
		t.Errorf("DefaultSystemPrompt() = %q, want %q", got, want)
	}
}
