// Package assistantapi exposes the admin assistant over HTTP.
package assistantapi

import (
	"encoding/json"
	"net/http"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/ai"
	"github.com/goorum04/Nlvip-sub000/internal/assistant"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

// Handler serves POST /api/admin-assistant. One route carries both
// operations: conversation turns and confirmed execution, discriminated
// by the executeTools flag, matching what the admin UI sends.
type Handler struct {
	controller *assistant.Controller
	confirmer  *assistant.ConfirmationExecutor
	log        *logger.Logger
}

// NewHandler creates the admin assistant HTTP handler.
func NewHandler(controller *assistant.Controller, confirmer *assistant.ConfirmationExecutor, log *logger.Logger) *Handler {
	return &Handler{
		controller: controller,
		confirmer:  confirmer,
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Messages           []chatMessage        `json:"messages"`
	ExecuteTools       bool                 `json:"executeTools"`
	ToolCallsToExecute []assistant.ToolCall `json:"toolCallsToExecute"`
	PlanToken          string               `json:"planToken"`
}

type converseResponse struct {
	Message           string                       `json:"message"`
	ToolCalls         []assistant.ToolCall         `json:"toolCalls"`
	ExecutionPlan     []assistant.PlanEntry        `json:"executionPlan,omitempty"`
	PlanToken         string                       `json:"planToken,omitempty"`
	NeedsConfirmation bool                         `json:"needsConfirmation"`
	ToolResults       map[string]assistant.Outcome `json:"toolResults,omitempty"`
}

// ServeHTTP dispatches the assistant request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ExecuteTools && len(req.ToolCallsToExecute) > 0 {
		h.handleConfirm(w, r, req)
		return
	}

	h.handleConverse(w, r, req)
}

func (h *Handler) handleConverse(w http.ResponseWriter, r *http.Request, req request) {
	history := make([]ai.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		history = append(history, ai.Message{
			Role:    ai.MessageRole(msg.Role),
			Content: msg.Content,
		})
	}

	result, err := h.controller.Converse(r.Context(), history)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	resp := converseResponse{
		Message:           result.Message,
		ToolCalls:         result.PendingCalls,
		ExecutionPlan:     result.Plan,
		PlanToken:         result.PlanToken,
		NeedsConfirmation: result.State == assistant.TurnNeedsConfirmation,
	}
	if resp.ToolCalls == nil {
		resp.ToolCalls = []assistant.ToolCall{}
	}
	if len(result.ToolResults) > 0 {
		resp.ToolResults = make(map[string]assistant.Outcome, len(result.ToolResults))
		for _, outcome := range result.ToolResults {
			resp.ToolResults[outcome.ID] = outcome
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request, req request) {
	result, err := h.confirmer.Execute(r.Context(), req.PlanToken, req.ToolCallsToExecute)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errors.ErrPlanTokenInvalid), errors.Is(err, errors.ErrPlanTokenMismatch):
		status = http.StatusConflict
	case errors.Is(err, errors.ErrModelTransport):
		status = http.StatusBadGateway
	case errors.Is(err, errors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrRateLimitExceeded):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		h.log.ErrorWithContext(r.Context(), err, map[string]string{
			"component": "assistant_api",
		})
	} else {
		h.log.Warnw("Assistant request failed", "status", status, "error", err)
	}

	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
