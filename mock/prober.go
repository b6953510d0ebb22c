package mock

import (
	"context"

	"github.com/mkarolik/aivis"
)

var _ aivis.Prober = (*Prober)(nil)

// Prober is a mock implementation of aivis.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, question aivis.Question, companyName string) aivis.ProbeResult
}

func (p *Prober) Probe(ctx context.Context, question aivis.Question, companyName string) aivis.ProbeResult {
	return p.ProbeFn(ctx, question, companyName)
}
