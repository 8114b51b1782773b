package service

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/llm"
	"go.uber.org/zap"
)

const noReasoning = "No explanation provided"

// Reason asks the reasoning service what to do about perception and applies
// its reply: belief updates are merged and the intention list is replaced.
//
// Belief updates are applied before intentions are decoded. Reason never
// fails: a service error or malformed reply is logged, this turn's intentions
// are cleared and an empty slice is returned. Beliefs and desires already in
// place, including updates applied earlier in the same turn, are never rolled
// back.
func (a *Agent) Reason(ctx context.Context, perception string) []domain.Intention {
	prompt := llm.BuildReasoningPrompt(a.systemPrompt, a.state.RenderContext(), perception)

	raw, err := a.llmClient.Complete(ctx, prompt)
	if err != nil {
		return a.abandonTurn("reasoning service call failed", err)
	}

	reply, err := llm.ParseReasoningReply(raw)
	if err != nil {
		return a.abandonTurn("failed to parse reasoning reply", err)
	}

	if err := a.applyBeliefUpdates(reply); err != nil {
		return a.abandonTurn("failed to apply belief updates", err)
	}

	intentions, err := llm.DecodeIntentions(reply.NewIntentions)
	if err != nil {
		return a.abandonTurn("failed to decode intentions", err)
	}
	a.state.ReplaceIntentions(intentions)

	reasoning := reply.Reasoning
	if reasoning == "" {
		reasoning = noReasoning
	}
	a.logger.Info("reasoning",
		zap.String("perception", perception),
		zap.String("reasoning", reasoning),
		zap.Int("belief_updates", len(reply.BeliefUpdates)),
		zap.Int("intentions", len(intentions)),
	)

	return a.state.Intentions()
}

// applyBeliefUpdates writes updates in order and stops at the first invalid
// entry. Updates before it stay applied.
func (a *Agent) applyBeliefUpdates(reply *domain.ReasoningReply) error {
	for i, raw := range reply.BeliefUpdates {
		b, err := llm.DecodeBeliefUpdate(raw)
		if err != nil {
			return fmt.Errorf("belief_updates[%d]: %w", i, err)
		}
		a.state.AddBelief(b.Key, b.Value, b.Confidence)
	}
	return nil
}

func (a *Agent) abandonTurn(msg string, err error) []domain.Intention {
	a.logger.Error(msg, zap.Error(err))
	a.state.ReplaceIntentions(nil)
	return []domain.Intention{}
}
