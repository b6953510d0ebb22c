package main

import (
	"context"
	"io"

	"github.com/mkarolik/aivis/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer *analyze.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze how visible a website is to LLM-powered search"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL         string `arg:"" help:"Website URL to analyze"`
	Company     string `short:"n" help:"Company name (derived from the URL when omitted)"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent probe limit"`
	Model       string  `short:"m" default:"o4-mini" help:"Model used for extraction, generation and probing"`
	RPS         float64 `default:"5" help:"LLM request rate limit in requests per second (0 disables limiting)"`
	JSON        bool    `short:"j" help:"Emit the full report as JSON"`
}
