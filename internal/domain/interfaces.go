package domain

import (
	"context"
	"encoding/json"
)

// ReasoningClient is the external reasoning service: one prompt in, one
// completion out.
type ReasoningClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ActionExecutor performs an intention's action and describes the outcome.
type ActionExecutor interface {
	Execute(ctx context.Context, action string, parameters map[string]any) (string, error)
}

// ReasoningReply is a reasoning-service reply that passed schema validation.
//
// Belief updates and intentions stay raw: belief updates are validated one at
// a time while being applied, so a bad entry only stops the entries after it,
// and intentions are decoded once the belief updates are in place.
type ReasoningReply struct {
	BeliefUpdates []json.RawMessage
	NewIntentions []json.RawMessage
	Reasoning     string
}
