package tools

import (
	"context"
	"errors"
)

// Capability classifies a tool by its side effects. Mutating tools are
// never executed without explicit human confirmation.
type Capability string

const (
	// CapabilityReadOnly marks a tool with no observable side effect.
	CapabilityReadOnly Capability = "read_only"
	// CapabilityMutating marks a tool that changes persistent state.
	CapabilityMutating Capability = "mutating"
)

// Tool represents a callable capability exposed to the assistant.
type Tool interface {
	// Name returns the unique tool identifier.
	Name() string
	// Description returns a short human-readable summary.
	Description() string
	// Capability returns the tool's side-effect classification.
	Capability() Capability
	// Parameters returns the JSON schema of the tool's arguments.
	Parameters() map[string]interface{}
	// Execute performs the tool's action using the provided arguments.
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// HandlerFunc is the function signature for tool handlers.
type HandlerFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// FunctionTool is a simple Tool implementation backed by a handler function.
type FunctionTool struct {
	name        string
	description string
	capability  Capability
	parameters  map[string]interface{}
	handler     HandlerFunc
}

// New creates a new function-backed Tool.
func New(name, description string, capability Capability, parameters map[string]interface{}, handler HandlerFunc) Tool {
	return &FunctionTool{
		name:        name,
		description: description,
		capability:  capability,
		parameters:  parameters,
		handler:     handler,
	}
}

// Name returns the tool identifier.
func (t *FunctionTool) Name() string { return t.name }

// Description returns a human description of the tool.
func (t *FunctionTool) Description() string { return t.description }

// Capability returns the tool's side-effect classification.
func (t *FunctionTool) Capability() Capability { return t.capability }

// Parameters returns the JSON schema of the tool's arguments.
func (t *FunctionTool) Parameters() map[string]interface{} {
	if t.parameters == nil {
		return map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
	}
	return t.parameters
}

// Execute runs the underlying handler.
func (t *FunctionTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	if t.handler == nil {
		return nil, errors.New("tool handler is not defined")
	}

	return t.handler(ctx, args)
}
