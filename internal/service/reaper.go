package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultReaperInterval = 10 * time.Minute

// ReaperService evicts hosted agents that have not been used for longer than
// the idle TTL.
type ReaperService struct {
	agents *AgentService
	ttl    time.Duration
	logger *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewReaperService(agents *AgentService, ttl time.Duration, logger *zap.Logger) *ReaperService {
	return &ReaperService{
		agents:   agents,
		ttl:      ttl,
		logger:   logger,
		interval: defaultReaperInterval,
		stopCh:   make(chan struct{}),
	}
}

func (s *ReaperService) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the reaper on a periodic schedule in a background goroutine.
// A non-positive TTL disables it.
func (s *ReaperService) Start() {
	if s.ttl <= 0 {
		s.logger.Info("agent reaper disabled")
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("agent reaper started", zap.Duration("interval", s.interval), zap.Duration("idle_ttl", s.ttl))

		for {
			select {
			case <-ticker.C:
				s.run(context.Background())
			case <-s.stopCh:
				s.logger.Info("agent reaper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the reaper. It may be called more than once, whether
// or not Start launched the worker.
func (s *ReaperService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *ReaperService) run(ctx context.Context) {
	evicted := s.agents.EvictIdle(ctx, s.ttl)
	if evicted > 0 {
		s.logger.Info("evicted idle agents", zap.Int("count", evicted))
	}
}
