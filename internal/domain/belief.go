package domain

// DefaultConfidence is used when a belief is written without an explicit confidence.
const DefaultConfidence = 1.0

// Belief is an agent's stored fact about the world.
// Confidence is conventionally within 0.0-1.0 but is not range checked.
type Belief struct {
	Key        string  `json:"key"`
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}
