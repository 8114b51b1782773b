package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State holds one agent's beliefs, desires and intentions.
//
// State is owned by a single caller and is not safe for concurrent use.
type State struct {
	beliefs     map[string]*Belief
	beliefOrder []string
	desires     []Desire
	intentions  []*Intention
}

// Snapshot is a JSON-friendly copy of a State.
type Snapshot struct {
	Beliefs    map[string]Belief `json:"beliefs"`
	Desires    []Desire          `json:"desires"`
	Intentions []Intention       `json:"intentions"`
}

// NewState returns an empty mental state.
func NewState() *State {
	return &State{beliefs: make(map[string]*Belief)}
}

// AddBelief inserts the belief at key, replacing any previous value in place.
func (s *State) AddBelief(key string, value any, confidence float64) {
	if b, ok := s.beliefs[key]; ok {
		b.Value = value
		b.Confidence = confidence
		return
	}
	s.beliefs[key] = &Belief{Key: key, Value: value, Confidence: confidence}
	s.beliefOrder = append(s.beliefOrder, key)
}

// Belief returns the belief stored at key.
func (s *State) Belief(key string) (Belief, bool) {
	b, ok := s.beliefs[key]
	if !ok {
		return Belief{}, false
	}
	return *b, true
}

// Beliefs returns every belief in first-insertion order.
func (s *State) Beliefs() []Belief {
	out := make([]Belief, 0, len(s.beliefOrder))
	for _, k := range s.beliefOrder {
		out = append(out, *s.beliefs[k])
	}
	return out
}

// BeliefKeys returns belief identifiers in first-insertion order.
func (s *State) BeliefKeys() []string {
	return append([]string{}, s.beliefOrder...)
}

// AddDesire appends a desire. Duplicates are kept.
func (s *State) AddDesire(goal string, priority int, context map[string]any) {
	s.desires = append(s.desires, NewDesire(goal, priority, context))
}

// Desires returns a copy of the desires in insertion order.
func (s *State) Desires() []Desire {
	return append([]Desire{}, s.desires...)
}

// Intentions returns a copy of the current intentions.
func (s *State) Intentions() []Intention {
	out := make([]Intention, 0, len(s.intentions))
	for _, in := range s.intentions {
		out = append(out, *in)
	}
	return out
}

// PendingIntentions returns the live intention handles in order. The slice is
// a copy, so removing intentions while walking it is safe.
func (s *State) PendingIntentions() []*Intention {
	return append([]*Intention{}, s.intentions...)
}

// ReplaceIntentions swaps the whole intention list.
func (s *State) ReplaceIntentions(intentions []*Intention) {
	s.intentions = append([]*Intention{}, intentions...)
}

// RemoveIntention drops the given intention handle. It reports false when the
// handle is no longer in the list.
func (s *State) RemoveIntention(target *Intention) bool {
	for i, in := range s.intentions {
		if in == target {
			s.intentions = append(s.intentions[:i], s.intentions[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot copies the state into a value safe to serialize.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Beliefs:    make(map[string]Belief, len(s.beliefs)),
		Desires:    s.Desires(),
		Intentions: s.Intentions(),
	}
	for k, b := range s.beliefs {
		snap.Beliefs[k] = *b
	}
	return snap
}

// RenderContext renders the state as pretty-printed JSON sections for a
// reasoning prompt. Belief keys are sorted so the output is deterministic.
func (s *State) RenderContext() string {
	snap := s.Snapshot()
	return fmt.Sprintf(`
Current State:
BELIEFS: %s
DESIRES: %s
CURRENT INTENTIONS: %s
`, renderJSON(snap.Beliefs), renderJSON(snap.Desires), renderJSON(snap.Intentions))
}

func renderJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%q", "unrenderable: "+err.Error())
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
