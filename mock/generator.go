package mock

import (
	"context"

	"github.com/mkarolik/aivis"
)

var _ aivis.Generator = (*Generator)(nil)

// Generator is a mock implementation of aivis.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, profile *aivis.Profile) (*aivis.QuestionSet, error)
}

func (g *Generator) Generate(ctx context.Context, profile *aivis.Profile) (*aivis.QuestionSet, error) {
	return g.GenerateFn(ctx, profile)
}
