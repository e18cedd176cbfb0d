package assistantapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/ai"
	"github.com/goorum04/Nlvip-sub000/internal/assistant"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

type stubProvider struct {
	response *ai.ChatResponse
	err      error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Chat(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

type rejectingTokens struct{ err error }

func (s *rejectingTokens) Issue(_ context.Context, _ []string) (string, error) { return "tok", nil }
func (s *rejectingTokens) Consume(_ context.Context, _ string, _ []string) error {
	return s.err
}

func newTestHandler(t *testing.T, provider ai.ChatProvider, tokens assistant.TokenStore) *Handler {
	t.Helper()

	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(tools.New(
		"find_member", "buscar", tools.CapabilityReadOnly, nil,
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"count": 1}, nil
		})))
	require.NoError(t, registry.Register(tools.New(
		"hide_post", "ocultar", tools.CapabilityMutating, nil,
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"message": "Post ocultado"}, nil
		})))

	if tokens == nil {
		tokens = assistant.NewNoopTokenStore()
	}

	log := logger.Get()
	invoker := assistant.NewInvoker(registry, log)
	controller := assistant.NewController(
		provider,
		registry,
		assistant.NewAutoExecutor(invoker),
		tokens,
		assistant.ControllerConfig{Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 1000},
		log,
	)
	confirmer := assistant.NewConfirmationExecutor(invoker, tokens, nil, log)

	return NewHandler(controller, confirmer, log)
}

func postJSON(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin-assistant", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Converse(t *testing.T) {
	t.Run("plain answer", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{response: &ai.ChatResponse{
			Choices: []ai.Choice{{Message: ai.Message{Role: ai.RoleAssistant, Content: "Hola"}}},
		}}, nil)

		rec := postJSON(t, handler, `{"messages":[{"role":"user","content":"hola"}]}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Hola", resp["message"])
		assert.Equal(t, false, resp["needsConfirmation"])
		assert.Empty(t, resp["toolCalls"])
	})

	t.Run("mutating call returns an execution plan", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{response: &ai.ChatResponse{
			Choices: []ai.Choice{{Message: ai.Message{
				Role: ai.RoleAssistant,
				ToolCalls: []ai.ToolCall{
					{ID: "c1", Name: "hide_post", Arguments: `{"post_id":"p1"}`},
				},
			}}},
		}}, &rejectingTokens{})

		rec := postJSON(t, handler, `{"messages":[{"role":"user","content":"oculta el post"}]}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			NeedsConfirmation bool                  `json:"needsConfirmation"`
			PlanToken         string                `json:"planToken"`
			ExecutionPlan     []assistant.PlanEntry `json:"executionPlan"`
			ToolCalls         []json.RawMessage     `json:"toolCalls"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.NeedsConfirmation)
		assert.Equal(t, "tok", resp.PlanToken)
		require.Len(t, resp.ExecutionPlan, 1)
		assert.Equal(t, "🚫", resp.ExecutionPlan[0].Icon)
		assert.Len(t, resp.ToolCalls, 1)
	})

	t.Run("model failure maps to 502", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{
			err: errors.Wrap(errors.ErrModelTransport, "upstream down"),
		}, nil)

		rec := postJSON(t, handler, `{"messages":[{"role":"user","content":"hola"}]}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("bad JSON maps to 400", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, nil)

		rec := postJSON(t, handler, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty history maps to 400", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, nil)

		rec := postJSON(t, handler, `{"messages":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET is rejected", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin-assistant", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandler_Confirm(t *testing.T) {
	t.Run("executes confirmed batch", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, nil)

		rec := postJSON(t, handler, `{
			"executeTools": true,
			"planToken": "tok",
			"toolCallsToExecute": [
				{"id":"c1","name":"hide_post","args":"{\"post_id\":\"p1\"}"}
			]
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp assistant.ConfirmResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Contains(t, resp.Results, "c1")
		assert.True(t, resp.Results["c1"].Success)
	})

	t.Run("invalid plan token maps to 409", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, &rejectingTokens{
			err: errors.Wrap(errors.ErrPlanTokenInvalid, "expired"),
		})

		rec := postJSON(t, handler, `{
			"executeTools": true,
			"planToken": "old",
			"toolCallsToExecute": [{"id":"c1","name":"hide_post","args":"{}"}]
		}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("mismatched call set maps to 409", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, &rejectingTokens{
			err: errors.Wrap(errors.ErrPlanTokenMismatch, "tampered"),
		})

		rec := postJSON(t, handler, `{
			"executeTools": true,
			"planToken": "tok",
			"toolCallsToExecute": [{"id":"c9","name":"hide_post","args":"{}"}]
		}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("per-call failure still returns 200", func(t *testing.T) {
		handler := newTestHandler(t, &stubProvider{}, nil)

		rec := postJSON(t, handler, `{
			"executeTools": true,
			"toolCallsToExecute": [
				{"id":"c1","name":"hide_post","args":"{}"},
				{"id":"c2","name":"ghost_tool","args":"{}"}
			]
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp assistant.ConfirmResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, "c2", resp.Errors[0].ID)
	})
}
