package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Harshitk-cp/bdi/internal/domain"
)

// ActionFunc adapts a plain function to domain.ActionExecutor.
type ActionFunc func(ctx context.Context, action string, parameters map[string]any) (string, error)

func (f ActionFunc) Execute(ctx context.Context, action string, parameters map[string]any) (string, error) {
	return f(ctx, action, parameters)
}

// DefaultActionExecutor performs nothing and acknowledges the action.
type DefaultActionExecutor struct{}

func (DefaultActionExecutor) Execute(_ context.Context, action string, parameters map[string]any) (string, error) {
	if parameters == nil {
		parameters = map[string]any{}
	}
	params, err := json.Marshal(parameters)
	if err != nil {
		params = []byte(fmt.Sprintf("%v", parameters))
	}
	return fmt.Sprintf("Action '%s' with params %s completed", action, params), nil
}

// ActionRegistry dispatches actions to named handlers and hands unknown
// actions to a fallback executor.
type ActionRegistry struct {
	handlers map[string]ActionFunc
	fallback domain.ActionExecutor
	mu       sync.RWMutex
}

// NewActionRegistry creates a registry. A nil fallback means DefaultActionExecutor.
func NewActionRegistry(fallback domain.ActionExecutor) *ActionRegistry {
	if fallback == nil {
		fallback = DefaultActionExecutor{}
	}
	return &ActionRegistry{
		handlers: make(map[string]ActionFunc),
		fallback: fallback,
	}
}

// Register binds an action name to a handler, replacing any previous one.
func (r *ActionRegistry) Register(action string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[action] = fn
}

// Actions lists the registered action names, sorted.
func (r *ActionRegistry) Actions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *ActionRegistry) Execute(ctx context.Context, action string, parameters map[string]any) (string, error) {
	r.mu.RLock()
	fn, ok := r.handlers[action]
	r.mu.RUnlock()
	if ok {
		return fn(ctx, action, parameters)
	}
	return r.fallback.Execute(ctx, action, parameters)
}
