package mock

import (
	"context"

	"github.com/mkarolik/aivis"
)

var _ aivis.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of aivis.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, text string) (*aivis.Profile, error)
}

func (e *Extractor) Extract(ctx context.Context, text string) (*aivis.Profile, error) {
	return e.ExtractFn(ctx, text)
}
