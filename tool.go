package aivis

import "context"

// ToolDefinition describes a tool in the JSON-schema shape expected by
// function-calling LLM backends.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Tool is an external capability the model may invoke during a probe.
// Implementations are stateless and safe for concurrent invocation.
type Tool interface {
	// Definition returns the function-calling contract for the tool.
	Definition() ToolDefinition

	// Invoke executes the tool. Failures are always soft: a missing
	// credential or transport error is reported as an {"error": ...}
	// payload, never as a Go error, since a tool failure is not itself a
	// probe failure.
	Invoke(ctx context.Context, args map[string]any) map[string]any
}

// Registry holds the tools exposed to the model during probes. It preserves
// registration order and is read-only after construction, so it is safe to
// share across concurrent probes.
type Registry struct {
	names map[string]Tool
	order []Tool
}

// NewRegistry creates a Registry containing the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{names: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool. Registering a tool with a duplicate name replaces
// the earlier registration. Must not be called once probing has started.
func (r *Registry) Register(t Tool) {
	name := t.Definition().Name
	if _, ok := r.names[name]; !ok {
		r.order = append(r.order, t)
	} else {
		for i, existing := range r.order {
			if existing.Definition().Name == name {
				r.order[i] = t
				break
			}
		}
	}
	r.names[name] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.names[name]
	return t, ok
}

// Definitions returns all tool definitions in registration order.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.order))
	for _, t := range r.order {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
