package mock

import (
	"context"

	"github.com/mkarolik/aivis"
)

var _ aivis.Tool = (*Tool)(nil)

// Tool is a mock implementation of aivis.Tool.
type Tool struct {
	DefinitionFn func() aivis.ToolDefinition
	InvokeFn     func(ctx context.Context, args map[string]any) map[string]any
}

func (t *Tool) Definition() aivis.ToolDefinition {
	return t.DefinitionFn()
}

func (t *Tool) Invoke(ctx context.Context, args map[string]any) map[string]any {
	return t.InvokeFn(ctx, args)
}
