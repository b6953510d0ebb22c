package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"github.com/mkarolik/aivis"
)

// probeState tracks the tool-calling conversation. The conversation is two
// turns at most: one initial call that may request tools, one final call
// after tool results are appended.
type probeState int

const (
	stateInitial probeState = iota
	stateToolExecution
	stateFinalAnswer
	stateDone
)

// Ensure Prober implements aivis.Prober at compile time.
var _ aivis.Prober = (*Prober)(nil)

// Prober runs one independent chat conversation per question, exposing the
// tool registry's function signatures to the model.
type Prober struct {
	client   *Client
	registry *aivis.Registry
	logger   *slog.Logger
	now      func() time.Time
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProberLogger sets the logger for per-probe events.
func WithProberLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a new Prober. The registry may be empty, in which case
// the model answers from its own knowledge without tools.
func NewProber(client *Client, registry *aivis.Registry, opts ...ProberOption) *Prober {
	p := &Prober{
		client:   client,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// answerPayload is the JSON contract of the final model answer.
type answerPayload struct {
	Answer     string
	Score      int
	Suggestion string
}

// Probe asks the question in a fresh conversation. Any failure during
// either LLM round-trip yields a zero-scored, error-flagged result instead
// of an error, so one bad question never aborts sibling probes.
func (p *Prober) Probe(ctx context.Context, question aivis.Question, companyName string) aivis.ProbeResult {
	conversation := []chatMessage{
		{Role: "system", Content: p.buildSystemPrompt(question, companyName)},
		{Role: "user", Content: question.Text},
	}

	var toolCalls []aivis.ToolCall
	var pendingCalls []chatToolCall
	var finalContent string

	state := stateInitial
	for state != stateDone {
		switch state {
		case stateInitial:
			maxTokens := 20000
			req := chatRequest{
				Messages:            conversation,
				MaxCompletionTokens: &maxTokens,
			}
			if p.registry != nil && p.registry.Len() > 0 {
				req.Tools = toolDefinitions(p.registry)
			} else {
				req.ResponseFormat = &chatResponseFormat{Type: "json_object"}
			}

			msg, err := p.client.createChatCompletion(ctx, req)
			if err != nil {
				return failedResult(question, err)
			}

			if len(msg.ToolCalls) > 0 {
				conversation = append(conversation, chatMessage{
					Role:      "assistant",
					Content:   msg.Content,
					ToolCalls: msg.ToolCalls,
				})
				pendingCalls = msg.ToolCalls
				state = stateToolExecution
			} else {
				finalContent = msg.Content
				state = stateDone
			}

		case stateToolExecution:
			for _, call := range pendingCalls {
				args := parseToolArguments(call.Function.Arguments)
				result := p.invokeTool(ctx, call.Function.Name, args)

				toolCalls = append(toolCalls, aivis.ToolCall{
					Name:      call.Function.Name,
					Arguments: args,
					Result:    result,
				})

				resultJSON, err := json.Marshal(result)
				if err != nil {
					resultJSON = []byte(`{"error": "unserializable tool result"}`)
				}
				conversation = append(conversation, chatMessage{
					Role:       "tool",
					ToolCallID: call.ID,
					Content:    string(resultJSON),
				})
			}
			state = stateFinalAnswer

		case stateFinalAnswer:
			// The answer after tool results is authoritative, even when the
			// initial turn already produced content.
			maxTokens := 1500
			msg, err := p.client.createChatCompletion(ctx, chatRequest{
				Messages:            conversation,
				MaxCompletionTokens: &maxTokens,
				ResponseFormat:      &chatResponseFormat{Type: "json_object"},
			})
			if err != nil {
				return failedResult(question, err)
			}
			finalContent = msg.Content
			state = stateDone
		}
	}

	payload := parseAnswer(finalContent)

	if p.logger != nil {
		p.logger.Debug("probe complete",
			"question", question.Text,
			"category", question.Category,
			"tool_calls", len(toolCalls),
			"self_score", payload.Score,
		)
	}

	return aivis.ProbeResult{
		Question:   question,
		Answer:     payload.Answer,
		ToolCalls:  toolCalls,
		Score:      payload.Score,
		Suggestion: payload.Suggestion,
	}
}

// invokeTool dispatches a tool call through the registry. Unknown names and
// tool failures come back as in-band error payloads; the conversation must
// continue either way.
func (p *Prober) invokeTool(ctx context.Context, name string, args map[string]any) map[string]any {
	tool, ok := p.registry.Get(name)
	if !ok {
		return map[string]any{"error": fmt.Sprintf("Unknown function: %s", name)}
	}
	return tool.Invoke(ctx, args)
}

// parseToolArguments decodes a tool call's argument string. Malformed JSON
// degrades to empty arguments rather than failing the probe.
func parseToolArguments(raw string) map[string]any {
	args := make(map[string]any)
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}
	}
	return args
}

// parseAnswer decodes the model's final JSON answer. Malformed JSON is
// repaired and retried once; if it still cannot be parsed, the raw content
// becomes the answer with a self-score of 0.
func parseAnswer(content string) answerPayload {
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil || json.Unmarshal([]byte(repaired), &raw) != nil {
			return answerPayload{Answer: content}
		}
	}

	payload := answerPayload{}
	if answer, ok := raw["answer"].(string); ok {
		payload.Answer = answer
	}
	if score, ok := raw["score"].(float64); ok {
		payload.Score = clampScore(int(score))
	}
	if suggestion, ok := raw["suggestion"].(string); ok {
		payload.Suggestion = suggestion
	}
	if payload.Answer == "" {
		payload.Answer = content
	}
	return payload
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 2 {
		return 2
	}
	return score
}

// failedResult converts a conversation failure into a terminal zero-scored
// result with no tool-call record.
func failedResult(question aivis.Question, err error) aivis.ProbeResult {
	return aivis.ProbeResult{
		Question: question,
		Answer:   fmt.Sprintf("Error querying LLM backend: %s", aivis.ErrorMessage(err)),
		Score:    0,
		Failed:   true,
	}
}

// toolDefinitions converts the registry's definitions into the wire format.
func toolDefinitions(registry *aivis.Registry) []chatTool {
	defs := registry.Definitions()
	tools := make([]chatTool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
				Strict:      true,
			},
		})
	}
	return tools
}

func (p *Prober) buildSystemPrompt(question aivis.Question, companyName string) string {
	extraProblemText := ""
	scoringRules := `2. Score your response (0-2) based on helpfulness to a prospective customer
    - 0: Poor quality, not helpful
    - 1: Moderate quality, somewhat helpful
    - 2: High quality, very helpful`

	if question.Category == aivis.ProblemBased {
		extraProblemText = "\n   - In addition, you MUST suggest 2 or 3 companies/products that solve the pain point described in the question. Try to highlight smaller startups or lesser-known companies that might not be in the mainstream. Do not suggest well-known companies like Google, Microsoft, etc. Focus on innovative solutions that are not widely recognized."
		scoringRules = fmt.Sprintf(`2. Score your response (0-2) based on whether the company %[1]s is mentioned in the response. Sometimes the answer may contain a shortened or modified version of the company name, so check for that as well. Be case insensitive in your checks.
    - 0: Company not mentioned at all
    - 1: Company mentioned somewhere in the response. You can ONLY give a score of 1 if the company %[1]s is mentioned in the response.
    - 2: Company mentioned as the first solution in the response. You can ONLY give a score of 2 if the company %[1]s is mentioned as the first solution in the response.`, companyName)
	}

	return fmt.Sprintf(`You are a helpful assistant that answers questions about companies and products.
Today's date is %s.

If you need current information that's not in your training data, use the available tools:
- tavily_search: For AI-optimized web searches, news, and company information (heavily preferred)
- web_search: For general web searches about companies, products, or topics
- get_recent_news: For recent news articles about companies or topics

You have three tasks:
1. Answer the question: %s
   - Provide a direct response with relevant details. You should respond with 4-5 sentences maximum.%s
%s
3. If the score is 0, provide a specific suggestion for improvement that would help LLMs and other AI tools better understand how to answer the question. The suggestion should be a single sentence that is actionable and specific to the question. If the score is 1 or 2, return an empty string for the suggestion.

IMPORTANT: Never make up information. If you don't have enough information, say so.
Structure your response as JSON with keys: "answer", "score", "suggestion".`,
		p.now().Format("2006-01-02"),
		question.Text,
		extraProblemText,
		scoringRules,
	)
}
