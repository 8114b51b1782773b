package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAgentNotFound  = errors.New("agent not found")
	ErrAgentNameEmpty = errors.New("name is required")
	ErrBeliefKeyEmpty = errors.New("key is required")
	ErrGoalEmpty      = errors.New("goal is required")
)

// hostedAgent pairs an Agent with the lock that serializes calls on it.
type hostedAgent struct {
	info     domain.Agent
	mu       sync.Mutex
	agent    *Agent
	lastUsed time.Time
}

// AgentService hosts independent agents in memory, keyed by ID. Calls on one
// agent run one at a time; agents never share state.
type AgentService struct {
	llmClient domain.ReasoningClient
	actions   domain.ActionExecutor
	agents    map[uuid.UUID]*hostedAgent
	mu        sync.RWMutex
	now       func() time.Time
	logger    *zap.Logger
}

func NewAgentService(lc domain.ReasoningClient, ae domain.ActionExecutor, logger *zap.Logger) *AgentService {
	return &AgentService{
		llmClient: lc,
		actions:   ae,
		agents:    make(map[uuid.UUID]*hostedAgent),
		now:       time.Now,
		logger:    logger,
	}
}

// SetClock overrides the time source used for creation and idle tracking.
func (s *AgentService) SetClock(now func() time.Time) {
	s.now = now
}

// AgentView is an agent's metadata together with a snapshot of its state.
type AgentView struct {
	domain.Agent
	domain.Snapshot
}

func (s *AgentService) Create(ctx context.Context, a *domain.Agent) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrAgentNameEmpty
	}
	a.ID = uuid.New()
	a.CreatedAt = s.now().UTC()

	rt := NewAgent(a.Name, s.llmClient, s.logger.With(zap.String("agent_id", a.ID.String())))
	rt.SetSystemPrompt(a.SystemPrompt)
	rt.SetActionExecutor(s.actions)
	a.SystemPrompt = rt.SystemPrompt()

	s.mu.Lock()
	s.agents[a.ID] = &hostedAgent{info: *a, agent: rt, lastUsed: s.now()}
	s.mu.Unlock()

	s.logger.Info("agent created", zap.String("agent_id", a.ID.String()), zap.String("name", a.Name))
	return nil
}

func (s *AgentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	h, err := s.get(id)
	if err != nil {
		return nil, err
	}
	info := h.info
	return &info, nil
}

// List returns all hosted agents, oldest first.
func (s *AgentService) List(ctx context.Context) []domain.Agent {
	s.mu.RLock()
	out := make([]domain.Agent, 0, len(s.agents))
	for _, h := range s.agents {
		out = append(out, h.info)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *AgentService) View(ctx context.Context, id uuid.UUID) (*AgentView, error) {
	var view *AgentView
	err := s.withAgent(id, func(h *hostedAgent) error {
		view = &AgentView{Agent: h.info, Snapshot: h.agent.State().Snapshot()}
		return nil
	})
	return view, err
}

func (s *AgentService) RenderContext(ctx context.Context, id uuid.UUID) (string, error) {
	var out string
	err := s.withAgent(id, func(h *hostedAgent) error {
		out = h.agent.RenderContext()
		return nil
	})
	return out, err
}

func (s *AgentService) AddBelief(ctx context.Context, id uuid.UUID, key string, value any, confidence float64) error {
	if key == "" {
		return ErrBeliefKeyEmpty
	}
	return s.withAgent(id, func(h *hostedAgent) error {
		h.agent.AddBelief(key, value, confidence)
		return nil
	})
}

func (s *AgentService) AddDesire(ctx context.Context, id uuid.UUID, goal string, priority int, goalContext map[string]any) error {
	if strings.TrimSpace(goal) == "" {
		return ErrGoalEmpty
	}
	return s.withAgent(id, func(h *hostedAgent) error {
		h.agent.AddDesire(goal, priority, goalContext)
		return nil
	})
}

func (s *AgentService) Reason(ctx context.Context, id uuid.UUID, perception string) ([]domain.Intention, error) {
	var intentions []domain.Intention
	err := s.withAgent(id, func(h *hostedAgent) error {
		intentions = h.agent.Reason(ctx, perception)
		return nil
	})
	return intentions, err
}

func (s *AgentService) ExecuteIntentions(ctx context.Context, id uuid.UUID) ([]string, error) {
	var results []string
	err := s.withAgent(id, func(h *hostedAgent) error {
		var err error
		results, err = h.agent.ExecuteIntentions(ctx)
		return err
	})
	return results, err
}

func (s *AgentService) Cycle(ctx context.Context, id uuid.UUID, perception string) (*CycleSummary, error) {
	var summary *CycleSummary
	err := s.withAgent(id, func(h *hostedAgent) error {
		var err error
		summary, err = h.agent.Cycle(ctx, perception)
		return err
	})
	return summary, err
}

func (s *AgentService) get(id uuid.UUID) (*hostedAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.agents[id]
	if !ok {
		return nil, ErrAgentNotFound
	}
	return h, nil
}

func (s *AgentService) withAgent(id uuid.UUID, fn func(h *hostedAgent) error) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastUsed = s.now()
	return fn(h)
}

// EvictIdle removes agents whose last call is older than ttl and returns how
// many were removed. Agents with a call in progress are skipped.
func (s *AgentService) EvictIdle(ctx context.Context, ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, h := range s.agents {
		if !h.mu.TryLock() {
			continue
		}
		if h.lastUsed.Before(cutoff) {
			delete(s.agents, id)
			evicted++
			s.logger.Info("agent evicted", zap.String("agent_id", id.String()), zap.Time("last_used", h.lastUsed))
		}
		h.mu.Unlock()
	}
	return evicted
}
