package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agent describes a hosted BDI agent. Its beliefs, desires and intentions
// live in a State owned by the runtime, not here.
type Agent struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
