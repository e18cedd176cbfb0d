package tools

import (
	"sort"
	"sync"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

// Registry holds the set of tools the assistant may call.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Re-registering a name replaces
// the previous tool.
func (r *Registry) Register(tool Tool) error {
	if tool == nil {
		return errors.Wrap(errors.ErrInvalidInput, "tool cannot be nil")
	}
	if tool.Name() == "" {
		return errors.Wrap(errors.ErrInvalidInput, "tool name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[tool.Name()] = tool

	return nil
}

// Get returns the tool with the given name.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownTool, "tool %q is not registered", name)
	}

	return tool, nil
}

// Classify returns the capability of the named tool, failing for names
// that are not registered. There is no default classification.
func (r *Registry) Classify(name string) (Capability, error) {
	tool, err := r.Get(name)
	if err != nil {
		return "", err
	}

	return tool.Capability(), nil
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Tool, 0, len(names))
	for _, name := range names {
		result = append(result, r.tools[name])
	}

	return result
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}
