package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshitk-cp/bdi/internal/service"
	"go.uber.org/zap"
)

// CycleHandler drives the perceive-reason-act loop of a hosted agent.
type CycleHandler struct {
	svc    *service.AgentService
	logger *zap.Logger
}

func NewCycleHandler(svc *service.AgentService, logger *zap.Logger) *CycleHandler {
	return &CycleHandler{svc: svc, logger: logger}
}

type perceptionRequest struct {
	Perception string `json:"perception"`
}

func (h *CycleHandler) perception(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req perceptionRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	if req.Perception == "" {
		writeError(w, http.StatusBadRequest, "perception is required")
		return "", false
	}
	return req.Perception, true
}

// Reason forms new intentions from a perception without executing them.
// A failed reasoning turn is not an HTTP error; it yields no intentions.
func (h *CycleHandler) Reason(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}
	perception, ok := h.perception(w, r)
	if !ok {
		return
	}

	intentions, err := h.svc.Reason(r.Context(), id, perception)
	if err != nil {
		writeServiceError(w, err, "failed to reason")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"intentions": intentions})
}

// Execute consumes the agent's current intentions.
func (h *CycleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	results, err := h.svc.ExecuteIntentions(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			writeServiceError(w, err, "")
			return
		}
		h.logger.Error("action execution failed", zap.String("agent_id", id.String()), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error(), "results": results})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// Cycle runs reason then execute and returns the cycle summary.
func (h *CycleHandler) Cycle(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}
	perception, ok := h.perception(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Cycle(r.Context(), id, perception)
	if err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			writeServiceError(w, err, "")
			return
		}
		h.logger.Error("cycle failed", zap.String("agent_id", id.String()), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error(), "summary": summary})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
