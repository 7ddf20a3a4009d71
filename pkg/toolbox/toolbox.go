package toolbox

import (
	"context"
	"encoding/json"
	"fmt"
)

// ToolBox holds a collection of tools. It allows registering, retrieving,
// listing, and calling tools by name. The MCP server layer serves a ToolBox;
// tests call tools through it directly.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Merge registers all tools from another ToolBox into this one. If a tool
// with the same name already exists, it is replaced.
func (tb *ToolBox) Merge(other *ToolBox) {
	for _, t := range other.tools {
		tb.tools[t.Name] = t
	}
}

// Tools returns all registered tools as a slice.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}
	return result
}

// Call executes the named tool with the given JSON arguments and returns its
// text result. Calling an unregistered tool is an error.
func (tb *ToolBox) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t, ok := tb.tools[name]
	if !ok {
		return "", fmt.Errorf("tool not found: %s", name)
	}

	return t.Handler(ctx, args)
}
