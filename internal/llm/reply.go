package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/bdi/internal/domain"
)

// ErrMalformedReply marks a reasoning reply that does not match the
// belief_updates / new_intentions / reasoning contract.
var ErrMalformedReply = errors.New("malformed reasoning reply")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedReply, fmt.Sprintf(format, args...))
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseReasoningReply validates the top-level shape of a raw completion.
// All three fields are optional. Belief updates and intentions are only
// checked for being lists; their entries are decoded later, in application
// order, by DecodeBeliefUpdate and DecodeIntentions. A reasoning value that
// is not a string is kept as its JSON text.
func ParseReasoningReply(raw string) (*domain.ReasoningReply, error) {
	body := stripFences(raw)
	if body == "" {
		return nil, malformed("empty reply")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)", ErrMalformedReply, err, body)
	}
	if fields == nil {
		return nil, malformed("reply is null")
	}

	reply := &domain.ReasoningReply{
		BeliefUpdates: []json.RawMessage{},
		NewIntentions: []json.RawMessage{},
	}

	if v, ok := fields["belief_updates"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &reply.BeliefUpdates); err != nil {
			return nil, malformed("belief_updates must be a list")
		}
	}

	if v, ok := fields["new_intentions"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &reply.NewIntentions); err != nil {
			return nil, malformed("new_intentions must be a list")
		}
	}

	if v, ok := fields["reasoning"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &reply.Reasoning); err != nil {
			reply.Reasoning = string(bytes.TrimSpace(v))
		}
	}

	return reply, nil
}

// DecodeIntentions validates every new_intentions entry. The first invalid
// entry rejects the whole list.
func DecodeIntentions(entries []json.RawMessage) ([]*domain.Intention, error) {
	out := make([]*domain.Intention, 0, len(entries))
	for i, entry := range entries {
		in, err := decodeIntention(entry)
		if err != nil {
			return nil, fmt.Errorf("new_intentions[%d]: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func decodeIntention(raw json.RawMessage) (*domain.Intention, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, malformed("intention must be an object")
	}

	actionRaw, ok := fields["action"]
	if !ok || isNull(actionRaw) {
		return nil, malformed("intention is missing action")
	}
	var action string
	if err := json.Unmarshal(actionRaw, &action); err != nil {
		return nil, malformed("intention action must be a string")
	}
	if strings.TrimSpace(action) == "" {
		return nil, malformed("intention action is empty")
	}

	var params map[string]any
	if v, ok := fields["parameters"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &params); err != nil {
			return nil, malformed("parameters of %q must be an object", action)
		}
	}

	// Any deadline shape is accepted; the executor treats what it cannot
	// coerce as no deadline.
	var deadline any
	if v, ok := fields["deadline"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &deadline); err != nil {
			return nil, malformed("deadline of %q: %v", action, err)
		}
	}

	return domain.NewIntention(action, params, deadline), nil
}

// DecodeBeliefUpdate validates one belief_updates entry. key and value are
// required (a null value is allowed); a missing or null confidence means
// domain.DefaultConfidence.
func DecodeBeliefUpdate(raw json.RawMessage) (domain.Belief, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.Belief{}, malformed("belief update must be an object")
	}

	keyRaw, ok := fields["key"]
	if !ok || isNull(keyRaw) {
		return domain.Belief{}, malformed("belief update is missing key")
	}
	var key string
	if err := json.Unmarshal(keyRaw, &key); err != nil {
		return domain.Belief{}, malformed("belief key must be a string")
	}

	valueRaw, ok := fields["value"]
	if !ok {
		return domain.Belief{}, malformed("belief %q is missing value", key)
	}
	var value any
	if err := json.Unmarshal(valueRaw, &value); err != nil {
		return domain.Belief{}, malformed("belief %q value: %v", key, err)
	}

	confidence := domain.DefaultConfidence
	if v, ok := fields["confidence"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &confidence); err != nil {
			return domain.Belief{}, malformed("belief %q confidence must be a number", key)
		}
	}

	return domain.Belief{Key: key, Value: value, Confidence: confidence}, nil
}
