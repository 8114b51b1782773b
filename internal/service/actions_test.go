package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDefaultActionExecutor(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		action string
		params map[string]any
		want   string
	}{
		{"nil params", "rest", nil, "Action 'rest' with params {} completed"},
		{"empty params", "rest", map[string]any{}, "Action 'rest' with params {} completed"},
		{"with params", "send_email", map[string]any{"to": "boss"}, `Action 'send_email' with params {"to":"boss"} completed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultActionExecutor{}.Execute(ctx, tt.action, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()
	fallback := new(MockActionExecutor)
	fallback.On("Execute", mock.Anything, "unknown", mock.Anything).Return("fell back", nil)

	r := NewActionRegistry(fallback)
	r.Register("notify", func(ctx context.Context, action string, parameters map[string]any) (string, error) {
		return "notified " + parameters["who"].(string), nil
	})

	got, err := r.Execute(ctx, "notify", map[string]any{"who": "team"})
	require.NoError(t, err)
	assert.Equal(t, "notified team", got)

	got, err = r.Execute(ctx, "unknown", nil)
	require.NoError(t, err)
	assert.Equal(t, "fell back", got)
	fallback.AssertExpectations(t)
}

func TestActionRegistry_DefaultFallback(t *testing.T) {
	r := NewActionRegistry(nil)
	got, err := r.Execute(context.Background(), "rest", nil)
	require.NoError(t, err)
	assert.Equal(t, "Action 'rest' with params {} completed", got)
}

func TestActionRegistry_RegisterReplacesAndLists(t *testing.T) {
	r := NewActionRegistry(nil)
	r.Register("b", func(context.Context, string, map[string]any) (string, error) { return "one", nil })
	r.Register("a", func(context.Context, string, map[string]any) (string, error) { return "", errors.New("nope") })
	r.Register("b", func(context.Context, string, map[string]any) (string, error) { return "two", nil })

	assert.Equal(t, []string{"a", "b"}, r.Actions())

	got, err := r.Execute(context.Background(), "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	_, err = r.Execute(context.Background(), "a", nil)
	assert.EqualError(t, err, "nope")
}
