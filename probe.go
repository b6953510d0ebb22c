package aivis

import "context"

// ToolCall records a single tool invocation made during a probe, in the
// order the model requested it.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Result    map[string]any `json:"result"`
}

// ProbeResult is the outcome of probing the LLM with a single question.
// The Score field is filled from the model's self-report for
// CompanySpecific questions and by ScoreProblem for ProblemBased ones.
type ProbeResult struct {
	Question   Question   `json:"question"`
	Answer     string     `json:"answer"`
	ToolCalls  []ToolCall `json:"toolCalls,omitempty"`
	Score      int        `json:"score"`
	Suggestion string     `json:"suggestion,omitempty"`
	Failed     bool       `json:"failed,omitempty"`
}

// Prober runs one independent LLM conversation per question.
type Prober interface {
	// Probe asks the question with a fresh context, letting the model call
	// registered tools before answering. It never returns an error for a
	// failed conversation: any failure yields a zero-scored, error-flagged
	// result so a bad question cannot sink sibling probes.
	Probe(ctx context.Context, question Question, companyName string) ProbeResult
}
