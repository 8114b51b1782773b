package handlers

import (
	"net/http"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/service"
)

type AgentHandler struct {
	svc *service.AgentService
}

func NewAgentHandler(svc *service.AgentService) *AgentHandler {
	return &AgentHandler{svc: svc}
}

type createAgentRequest struct {
	Name         string         `json:"name"`
	SystemPrompt string         `json:"system_prompt"`
	Metadata     map[string]any `json:"metadata"`
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	agent := &domain.Agent{
		Name:         req.Name,
		SystemPrompt: req.SystemPrompt,
		Metadata:     req.Metadata,
	}

	if err := h.svc.Create(r.Context(), agent); err != nil {
		writeServiceError(w, err, "failed to create agent")
		return
	}

	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"agents": h.svc.List(r.Context())})
}

// GetByID returns the agent together with its current beliefs, desires and
// intentions.
func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.View(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to get agent")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Context returns the state block exactly as it is embedded in reasoning prompts.
func (h *AgentHandler) Context(w http.ResponseWriter, r *http.Request) {
	id, ok := agentID(w, r)
	if !ok {
		return
	}

	rendered, err := h.svc.RenderContext(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to render context")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"context": rendered})
}
