package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/service"
)

// StateHandler seeds an agent's beliefs and desires.
type StateHandler struct {
	svc *service.AgentService
}

func NewStateHandler(svc *service.AgentService) *StateHandler {
	return &StateHandler{svc: svc}
}

type addBeliefRequest struct {
	Key        string          `json:"key"`
	Value      json.RawMessage `json:"value"`
	Confidence *float64        `json:"confidence"`
}

func (h *StateHandler) AddBelief(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	var req addBeliefRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	var value any
	if err := json.Unmarshal(req.Value, &value); err != nil {
		writeError(w, http.StatusBadRequest, "invalid value")
		return
	}
	confidence := domain.DefaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	if err := h.svc.AddBelief(r.Context(), id, req.Key, value, confidence); err != nil {
		writeServiceError(w, err, "failed to add belief")
		return
	}

	writeJSON(w, http.StatusCreated, domain.Belief{Key: req.Key, Value: value, Confidence: confidence})
}

type addDesireRequest struct {
	Goal     string         `json:"goal"`
	Priority *int           `json:"priority"`
	Context  map[string]any `json:"context"`
}

func (h *StateHandler) AddDesire(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	var req addDesireRequest
	if !decodeBody(w, r, &req) {
		return
	}
	priority := domain.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	if err := h.svc.AddDesire(r.Context(), id, req.Goal, priority, req.Context); err != nil {
		writeServiceError(w, err, "failed to add desire")
		return
	}

	writeJSON(w, http.StatusCreated, domain.NewDesire(req.Goal, priority, req.Context))
}
