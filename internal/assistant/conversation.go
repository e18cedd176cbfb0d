// Package assistant implements the conversational action orchestrator:
// the model proposes tool calls, read-only tools run immediately and
// mutating tools are held behind an execution plan until the admin
// confirms them.
package assistant

import (
	"encoding/json"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// ArgumentPayload carries tool arguments as raw JSON. Models emit the
// arguments either as a JSON object or as a JSON string containing an
// encoded object; both are accepted and kept verbatim until a tool
// actually needs them parsed.
type ArgumentPayload struct {
	raw json.RawMessage
}

// NewArguments builds a payload from a raw argument string.
func NewArguments(raw string) ArgumentPayload {
	if raw == "" {
		raw = "{}"
	}

	return ArgumentPayload{raw: json.RawMessage(raw)}
}

// UnmarshalJSON accepts either an object or a string-encoded object.
// Malformed content is kept as-is and surfaces when Map is called.
func (a *ArgumentPayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.raw = json.RawMessage(s)
		return nil
	}

	a.raw = append(json.RawMessage(nil), data...)

	return nil
}

// MarshalJSON emits the raw argument object.
func (a ArgumentPayload) MarshalJSON() ([]byte, error) {
	if len(a.raw) == 0 {
		return []byte("{}"), nil
	}

	return a.raw, nil
}

// String returns the raw argument text.
func (a ArgumentPayload) String() string {
	if len(a.raw) == 0 {
		return "{}"
	}

	return string(a.raw)
}

// Map parses the payload into a generic argument map.
func (a ArgumentPayload) Map() (map[string]interface{}, error) {
	if len(a.raw) == 0 {
		return map[string]interface{}{}, nil
	}

	var args map[string]interface{}
	if err := json.Unmarshal(a.raw, &args); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedArguments, "cannot parse arguments: %v", err)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	return args, nil
}

// ToolCall is one call proposed by the model or resubmitted by the
// client for confirmed execution.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments ArgumentPayload `json:"arguments"`
}

// Clients send confirmed calls back in the shape their UI received
// them, which historically used "args" and sometimes the nested
// function form. Accept all three.
func (c *ToolCall) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID        string           `json:"id"`
		Name      string           `json:"name"`
		Arguments *ArgumentPayload `json:"arguments"`
		Args      *ArgumentPayload `json:"args"`
		Function  *struct {
			Name      string           `json:"name"`
			Arguments *ArgumentPayload `json:"arguments"`
		} `json:"function"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot parse tool call: %v", err)
	}

	c.ID = wire.ID
	c.Name = wire.Name

	switch {
	case wire.Arguments != nil:
		c.Arguments = *wire.Arguments
	case wire.Args != nil:
		c.Arguments = *wire.Args
	}

	if wire.Function != nil {
		if c.Name == "" {
			c.Name = wire.Function.Name
		}
		if wire.Function.Arguments != nil && len(c.Arguments.raw) == 0 {
			c.Arguments = *wire.Function.Arguments
		}
	}

	return nil
}

// Outcome is the result of invoking one tool call.
type Outcome struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Success bool        `json:"success"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Failure is a compact error record for one tool call.
type Failure struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// TurnState tells the client whether the turn finished or is waiting
// for confirmation of mutating actions.
type TurnState string

const (
	// TurnAnswered means the turn completed with a plain answer.
	TurnAnswered TurnState = "answered"
	// TurnNeedsConfirmation means mutating calls are pending approval.
	TurnNeedsConfirmation TurnState = "needs_confirmation"
)

// TurnResult is the outcome of one conversation turn.
type TurnResult struct {
	State        TurnState   `json:"state"`
	Message      string      `json:"message"`
	PendingCalls []ToolCall  `json:"pending_calls,omitempty"`
	Plan         []PlanEntry `json:"plan,omitempty"`
	PlanToken    string      `json:"plan_token,omitempty"`
	ToolResults  []Outcome   `json:"tool_results,omitempty"`
}
