package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_AddBelief_Overwrites(t *testing.T) {
	s := NewState()
	s.AddBelief("energy_level", "high", 0.8)
	s.AddBelief("current_time", "09:00", 0.9)
	s.AddBelief("energy_level", "low", 0.4)

	b, ok := s.Belief("energy_level")
	require.True(t, ok)
	assert.Equal(t, "low", b.Value)
	assert.Equal(t, 0.4, b.Confidence)
	assert.Equal(t, []string{"energy_level", "current_time"}, s.BeliefKeys())
	assert.Len(t, s.Beliefs(), 2)
}

func TestState_AddBelief_AcceptsAnyConfidence(t *testing.T) {
	s := NewState()
	s.AddBelief("odd", 1, 7.5)
	s.AddBelief("negative", nil, -2)

	b, _ := s.Belief("odd")
	assert.Equal(t, 7.5, b.Confidence)
	b, _ = s.Belief("negative")
	assert.Equal(t, -2.0, b.Confidence)
	assert.Nil(t, b.Value)
}

func TestState_AddDesire_FreshContext(t *testing.T) {
	s := NewState()
	s.AddDesire("complete_project", DefaultPriority, nil)
	s.AddDesire("take_break", 2, map[string]any{"after": "lunch"})

	desires := s.Desires()
	require.Len(t, desires, 2)
	assert.Equal(t, "complete_project", desires[0].Goal)
	assert.Equal(t, 1, desires[0].Priority)
	assert.NotNil(t, desires[0].Context)
	assert.Empty(t, desires[0].Context)
	assert.Equal(t, "lunch", desires[1].Context["after"])
}

func TestState_RemoveIntention(t *testing.T) {
	s := NewState()
	a := NewIntention("a", nil, nil)
	b := NewIntention("b", nil, nil)
	s.ReplaceIntentions([]*Intention{a, b})

	pending := s.PendingIntentions()
	assert.True(t, s.RemoveIntention(a))
	assert.False(t, s.RemoveIntention(a))
	assert.Len(t, pending, 2, "snapshot must not see removals")
	require.Len(t, s.Intentions(), 1)
	assert.Equal(t, "b", s.Intentions()[0].Action)
}

func TestState_RenderContext_Empty(t *testing.T) {
	out := NewState().RenderContext()

	assert.Contains(t, out, "Current State:")
	assert.Contains(t, out, "BELIEFS: {}")
	assert.Contains(t, out, "DESIRES: []")
	assert.Contains(t, out, "CURRENT INTENTIONS: []")
}

func TestState_RenderContext_Deterministic(t *testing.T) {
	build := func(keys ...string) *State {
		s := NewState()
		for _, k := range keys {
			s.AddBelief(k, k+"-value", 0.5)
		}
		s.AddDesire("ship <it> & rest", 3, map[string]any{"b": 2, "a": 1})
		return s
	}

	first := build("zeta", "alpha", "mid").RenderContext()
	second := build("mid", "zeta", "alpha").RenderContext()
	assert.Equal(t, first, second)
	assert.Less(t, strings.Index(first, `"alpha"`), strings.Index(first, `"zeta"`))
	assert.Contains(t, first, "ship <it> & rest", "html must not be escaped")
}

// parseRendered pulls the three JSON sections back out of RenderContext output.
func parseRendered(t *testing.T, out string) (map[string]Belief, []Desire, []Intention) {
	t.Helper()
	section := func(label, next string) string {
		start := strings.Index(out, label)
		require.GreaterOrEqual(t, start, 0, "missing %s", label)
		start += len(label)
		end := len(out)
		if next != "" {
			end = strings.Index(out, next)
		}
		return out[start:end]
	}

	var beliefs map[string]Belief
	var desires []Desire
	var intentions []Intention
	require.NoError(t, json.Unmarshal([]byte(section("BELIEFS: ", "DESIRES: ")), &beliefs))
	require.NoError(t, json.Unmarshal([]byte(section("DESIRES: ", "CURRENT INTENTIONS: ")), &desires))
	require.NoError(t, json.Unmarshal([]byte(section("CURRENT INTENTIONS: ", "")), &intentions))
	return beliefs, desires, intentions
}

func TestState_RenderContext_RoundTrip(t *testing.T) {
	s := NewState()
	s.AddBelief("mood", "calm", 0.6)
	s.AddBelief("location", map[string]any{"city": "Lisbon"}, 1)
	s.AddDesire("rest", 2, nil)
	s.ReplaceIntentions([]*Intention{
		NewIntention("nap", map[string]any{"minutes": 20}, "1700000000"),
	})

	beliefs, desires, intentions := parseRendered(t, s.RenderContext())
	assert.Len(t, beliefs, 2)
	assert.Equal(t, "calm", beliefs["mood"].Value)
	assert.Len(t, desires, 1)
	require.Len(t, intentions, 1)
	assert.Equal(t, "nap", intentions[0].Action)
	assert.Equal(t, "1700000000", intentions[0].Deadline)
}

func TestProperty_StateInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("one belief per key holding the most recent write", prop.ForAll(
		func(keys []string, confidences []float64) bool {
			s := NewState()
			latest := make(map[string]float64)
			for i, k := range keys {
				c := confidences[i%len(confidences)]
				s.AddBelief(k, i, c)
				latest[k] = c
			}
			if len(s.BeliefKeys()) != len(latest) {
				return false
			}
			for k, c := range latest {
				b, ok := s.Belief(k)
				if !ok || b.Confidence != c || b.Key != k {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 4).Map(func(i int) string { return string(rune('a' + i)) })),
		gen.SliceOfN(3, gen.Float64Range(0, 1)),
	))

	properties.Property("AddDesire is strictly additive and ordered", prop.ForAll(
		func(goals []string) bool {
			s := NewState()
			for i, g := range goals {
				s.AddDesire(g, i, nil)
			}
			desires := s.Desires()
			if len(desires) != len(goals) {
				return false
			}
			for i, d := range desires {
				if d.Goal != goals[i] || d.Priority != i {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("rendered context reproduces live counts", prop.ForAll(
		func(keys []string, goals []string) bool {
			s := NewState()
			for _, k := range keys {
				s.AddBelief(k, "v", 1)
			}
			for _, g := range goals {
				s.AddDesire(g, 1, nil)
			}
			beliefs, desires, intentions := parseRendered(t, s.RenderContext())
			return len(beliefs) == len(s.BeliefKeys()) &&
				len(desires) == len(goals) &&
				len(intentions) == 0
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
