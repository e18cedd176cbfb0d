package tools

import (
	"github.com/goorum04/Nlvip-sub000/internal/adapters/ai"
)

// Definitions converts the registered tools into chat tool definitions
// suitable for a model request.
func (r *Registry) Definitions() []ai.ToolDefinition {
	list := r.List()

	defs := make([]ai.ToolDefinition, 0, len(list))
	for _, tool := range list {
		defs = append(defs, ai.ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}

	return defs
}
