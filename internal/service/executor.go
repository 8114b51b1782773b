package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ExecuteIntentions consumes every current intention exactly once, in order.
// Intentions past their deadline are dropped as "EXPIRED: <action>"; the rest
// are handed to the action executor and reported as
// "EXECUTED: <action> -> <result>".
//
// An action executor error is not swallowed: the failing intention is removed,
// the walk stops, and the results so far are returned with the error.
func (a *Agent) ExecuteIntentions(ctx context.Context) ([]string, error) {
	results := []string{}
	now := a.now()

	for _, in := range a.state.PendingIntentions() {
		if in.ExpiredAt(now) {
			a.state.RemoveIntention(in)
			results = append(results, "EXPIRED: "+in.Action)
			a.logger.Debug("intention expired", zap.String("action", in.Action), zap.Any("deadline", in.Deadline))
			continue
		}

		result, err := a.actions.Execute(ctx, in.Action, in.Parameters)
		a.state.RemoveIntention(in)
		if err != nil {
			return results, fmt.Errorf("execute %q: %w", in.Action, err)
		}
		results = append(results, fmt.Sprintf("EXECUTED: %s -> %s", in.Action, result))
		a.logger.Debug("intention executed", zap.String("action", in.Action), zap.String("result", result))
	}

	return results, nil
}
