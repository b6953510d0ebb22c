package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mkarolik/aivis"
	"github.com/mkarolik/aivis/mock"
	aivisslog "github.com/mkarolik/aivis/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingProber_Probe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Prober{
		ProbeFn: func(ctx context.Context, question aivis.Question, companyName string) aivis.ProbeResult {
			return aivis.ProbeResult{Question: question, Answer: "fine", Score: 2}
		},
	}

	prober := aivisslog.NewLoggingProber(inner, logger)
	result := prober.Probe(context.Background(), aivis.Question{
		Text:     "Are there reviews of Acme?",
		Category: aivis.CompanySpecific,
	}, "Acme")

	assert.Equal(t, 2, result.Score)
	output := buf.String()
	assert.Contains(t, output, "probe")
	assert.Contains(t, output, "score=2")
	assert.Contains(t, output, "category=company_specific")
}
