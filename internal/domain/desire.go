package domain

// DefaultPriority is used when a desire is added without an explicit priority.
const DefaultPriority = 1

// Desire is a goal the agent wants to achieve. Higher priority means more
// important; priority has no effect on execution order.
type Desire struct {
	Goal     string         `json:"goal"`
	Priority int            `json:"priority"`
	Context  map[string]any `json:"context"`
}

// NewDesire builds a Desire that owns a fresh copy of context.
func NewDesire(goal string, priority int, context map[string]any) Desire {
	return Desire{
		Goal:     goal,
		Priority: priority,
		Context:  cloneMap(context),
	}
}

// cloneMap returns a shallow copy of m. A nil map yields an empty, non-nil map
// so no two records ever share a default instance.
func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
