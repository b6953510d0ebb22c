package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkarolik/aivis"
)

// Ensure LoggingProber implements aivis.Prober at compile time.
var _ aivis.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with per-question outcome logging.
type LoggingProber struct {
	next   aivis.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next aivis.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the result.
func (p *LoggingProber) Probe(ctx context.Context, question aivis.Question, companyName string) aivis.ProbeResult {
	begin := time.Now()
	result := p.next.Probe(ctx, question, companyName)
	p.logger.Info("probe",
		"question", question.Text,
		"category", question.Category,
		"score", result.Score,
		"tool_calls", len(result.ToolCalls),
		"failed", result.Failed,
		"duration", time.Since(begin),
	)
	return result
}
