package service

import (
	"context"
	"time"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/llm"
	"go.uber.org/zap"
)

// Agent runs the perceive-reason-act loop over one agent's State.
//
// An Agent is owned by a single caller and is not safe for concurrent use;
// AgentService serializes access when agents are shared.
type Agent struct {
	name         string
	systemPrompt string
	state        *domain.State
	llmClient    domain.ReasoningClient
	actions      domain.ActionExecutor
	now          func() time.Time
	logger       *zap.Logger
}

// CycleSummary reports the outcome of one Cycle.
type CycleSummary struct {
	IntentionsFormed int      `json:"intentions_formed"`
	ActionsExecuted  []string `json:"actions_executed"`
	CurrentBeliefs   []string `json:"current_beliefs"`
	ActiveDesires    int      `json:"active_desires"`
}

func NewAgent(name string, lc domain.ReasoningClient, logger *zap.Logger) *Agent {
	return &Agent{
		name:         name,
		systemPrompt: llm.DefaultSystemPrompt(name),
		state:        domain.NewState(),
		llmClient:    lc,
		actions:      DefaultActionExecutor{},
		now:          time.Now,
		logger:       logger.With(zap.String("agent", name)),
	}
}

// SetSystemPrompt replaces the system prompt. An empty prompt restores the default.
func (a *Agent) SetSystemPrompt(prompt string) {
	if prompt == "" {
		prompt = llm.DefaultSystemPrompt(a.name)
	}
	a.systemPrompt = prompt
}

// SetActionExecutor substitutes the capability that performs intentions.
func (a *Agent) SetActionExecutor(ae domain.ActionExecutor) {
	if ae == nil {
		ae = DefaultActionExecutor{}
	}
	a.actions = ae
}

// SetClock overrides the time source used for deadline checks.
func (a *Agent) SetClock(now func() time.Time) {
	a.now = now
}

func (a *Agent) Name() string         { return a.name }
func (a *Agent) SystemPrompt() string { return a.systemPrompt }

// State exposes the agent's state container for reads.
func (a *Agent) State() *domain.State { return a.state }

// AddBelief inserts or overwrites the belief at key.
func (a *Agent) AddBelief(key string, value any, confidence float64) {
	a.state.AddBelief(key, value, confidence)
}

// AddDesire appends a desire.
func (a *Agent) AddDesire(goal string, priority int, goalContext map[string]any) {
	a.state.AddDesire(goal, priority, goalContext)
}

// RenderContext renders the current state for a reasoning prompt.
func (a *Agent) RenderContext() string {
	return a.state.RenderContext()
}

// Cycle runs one perceive-reason-act step. Reasoning failures degrade to an
// empty turn; only an action executor error is returned.
func (a *Agent) Cycle(ctx context.Context, perception string) (*CycleSummary, error) {
	intentions := a.Reason(ctx, perception)
	results, err := a.ExecuteIntentions(ctx)

	summary := &CycleSummary{
		IntentionsFormed: len(intentions),
		ActionsExecuted:  results,
		CurrentBeliefs:   a.state.BeliefKeys(),
		ActiveDesires:    len(a.state.Desires()),
	}
	return summary, err
}
