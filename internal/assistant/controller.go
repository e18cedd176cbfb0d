package assistant

import (
	"context"
	"encoding/json"

	"github.com/goorum04/Nlvip-sub000/internal/adapters/ai"
	"github.com/goorum04/Nlvip-sub000/internal/metrics"
	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
	"github.com/goorum04/Nlvip-sub000/pkg/logger"
)

const systemPrompt = `Eres el Asistente IA del gimnasio NL VIP CLUB. Tu trabajo es ayudar al administrador a gestionar el gimnasio mediante comandos de voz o texto.

IMPORTANTE:
1. SIEMPRE usa las herramientas disponibles para obtener información o realizar acciones
2. Cuando el admin mencione un nombre de socio, PRIMERO usa find_member para buscarlo
3. Nunca inventes datos - siempre consulta la información real
4. Responde en español de forma clara y concisa
5. Para acciones que modifiquen datos, explica qué vas a hacer ANTES de ejecutar

Objetivos que el admin puede pedir:
- "pérdida de grasa" o "definición" → goal: fat_loss
- "mantener" o "mantenimiento" → goal: maintain
- "ganar músculo" o "volumen" → goal: muscle_gain

Cuando el admin pida aplicar un plan a un socio:
1. Primero busca al socio con find_member
2. Luego usa apply_full_member_plan con el goal correcto

Responde siempre de forma amigable y profesional. Si algo falla, explica el problema de forma sencilla.`

const (
	fallbackAnswer     = "No entendí tu petición. ¿Puedes reformularla?"
	fallbackFollowUp   = "Listo"
	confirmationPrompt = "Voy a realizar las siguientes acciones. ¿Confirmas?"
)

// One follow-up round lets the model interpret read-only results
// without letting tool loops run unbounded.
const maxFollowUpRounds = 1

// ControllerConfig carries the model parameters for a turn.
type ControllerConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Controller drives one conversation turn: it asks the model, runs
// read-only calls immediately and stops for confirmation as soon as a
// mutating call shows up.
type Controller struct {
	provider ai.ChatProvider
	registry *tools.Registry
	executor *AutoExecutor
	tokens   TokenStore
	cfg      ControllerConfig
	log      *logger.Logger
}

// NewController creates a conversation turn controller.
func NewController(
	provider ai.ChatProvider,
	registry *tools.Registry,
	executor *AutoExecutor,
	tokens TokenStore,
	cfg ControllerConfig,
	log *logger.Logger,
) *Controller {
	return &Controller{
		provider: provider,
		registry: registry,
		executor: executor,
		tokens:   tokens,
		cfg:      cfg,
		log:      log,
	}
}

// Converse runs one turn over the given history. The last history entry
// is the admin's new message.
func (c *Controller) Converse(ctx context.Context, history []ai.Message) (*TurnResult, error) {
	if len(history) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "conversation history is empty")
	}

	messages := make([]ai.Message, 0, len(history)+1)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)

	var collected []Outcome

	for round := 0; ; round++ {
		choice, err := c.complete(ctx, messages)
		if err != nil {
			metrics.AssistantTurns.WithLabelValues("error").Inc()
			return nil, err
		}

		calls := convertCalls(choice.Message.ToolCalls)
		readOnly, mutating := Partition(c.registry, calls)

		// Mutating calls freeze the whole turn: nothing executes,
		// read-only included, until the admin confirms.
		if len(mutating) > 0 {
			token, err := c.tokens.Issue(ctx, callIDs(mutating))
			if err != nil {
				metrics.AssistantTurns.WithLabelValues("error").Inc()
				return nil, errors.Wrap(err, "failed to issue plan token")
			}

			message := choice.Message.Content
			if message == "" {
				message = confirmationPrompt
			}

			c.log.Infow("Turn needs confirmation",
				"pending_calls", len(mutating),
				"deferred_read_only", len(readOnly),
			)
			metrics.AssistantTurns.WithLabelValues("needs_confirmation").Inc()

			return &TurnResult{
				State:        TurnNeedsConfirmation,
				Message:      message,
				PendingCalls: mutating,
				Plan:         BuildPlan(mutating),
				PlanToken:    token,
				ToolResults:  collected,
			}, nil
		}

		if len(readOnly) > 0 && round < maxFollowUpRounds {
			outcomes := c.executor.Run(ctx, readOnly)
			collected = append(collected, outcomes...)

			messages = append(messages, assistantTurnMessage(choice.Message))
			messages = append(messages, outcomeMessages(outcomes)...)

			continue
		}

		message := choice.Message.Content
		if message == "" {
			if len(collected) > 0 {
				message = fallbackFollowUp
			} else {
				message = fallbackAnswer
			}
		}

		metrics.AssistantTurns.WithLabelValues("answer").Inc()

		return &TurnResult{
			State:       TurnAnswered,
			Message:     message,
			ToolResults: collected,
		}, nil
	}
}

func (c *Controller) complete(ctx context.Context, messages []ai.Message) (*ai.Choice, error) {
	resp, err := c.provider.Chat(ctx, ai.ChatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Tools:       c.registry.Definitions(),
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(errors.ErrModelTransport, "model returned no choices")
	}

	return &resp.Choices[0], nil
}

func convertCalls(calls []ai.ToolCall) []ToolCall {
	if len(calls) == 0 {
		return nil
	}

	converted := make([]ToolCall, 0, len(calls))
	for _, call := range calls {
		converted = append(converted, ToolCall{
			ID:        call.ID,
			Name:      call.Name,
			Arguments: NewArguments(call.Arguments),
		})
	}

	return converted
}

func callIDs(calls []ToolCall) []string {
	ids := make([]string, 0, len(calls))
	for _, call := range calls {
		ids = append(ids, call.ID)
	}

	return ids
}

func assistantTurnMessage(msg ai.Message) ai.Message {
	return ai.Message{
		Role:      ai.RoleAssistant,
		Content:   msg.Content,
		ToolCalls: msg.ToolCalls,
	}
}

func outcomeMessages(outcomes []Outcome) []ai.Message {
	messages := make([]ai.Message, 0, len(outcomes))
	for _, outcome := range outcomes {
		payload, err := json.Marshal(outcome)
		if err != nil {
			payload = []byte(`{"success":false,"error":"unserializable tool result"}`)
		}

		messages = append(messages, ai.Message{
			Role:       ai.RoleTool,
			Content:    string(payload),
			ToolCallID: outcome.ID,
		})
	}

	return messages
}
