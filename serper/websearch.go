// Package serper provides a web search tool backed by the Serper API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkarolik/aivis"
)

// DefaultBaseURL is the Serper search endpoint.
const DefaultBaseURL = "https://google.serper.dev"

const defaultNumResults = 5

// Ensure WebSearch implements aivis.Tool at compile time.
var _ aivis.Tool = (*WebSearch)(nil)

// WebSearch is an aivis.Tool that searches the web for current information
// about a company or product. It fails soft: a missing credential or
// transport error is returned as an {"error": ...} payload.
type WebSearch struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a WebSearch tool.
type Option func(*WebSearch)

// WithBaseURL overrides the API endpoint. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(w *WebSearch) {
		w.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(w *WebSearch) {
		w.client = client
	}
}

// NewWebSearch creates the tool. An empty apiKey is allowed; invocations
// then report a configuration error in-band.
func NewWebSearch(apiKey string, opts ...Option) *WebSearch {
	w := &WebSearch{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.client == nil {
		w.client = &http.Client{Timeout: 10 * time.Second}
	}
	return w
}

// Definition returns the function-calling contract for the tool.
func (w *WebSearch) Definition() aivis.ToolDefinition {
	return aivis.ToolDefinition{
		Name:        "web_search",
		Description: "Search the web for current information about a company or product",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query to execute",
				},
				"num_results": map[string]any{
					"type":        "integer",
					"description": "Number of search results to return (default: 10)",
				},
			},
			"required":             []string{"query", "num_results"},
			"additionalProperties": false,
		},
	}
}

// Invoke executes the search.
func (w *WebSearch) Invoke(ctx context.Context, args map[string]any) map[string]any {
	if w.apiKey == "" {
		return map[string]any{"error": "Web search API key not configured"}
	}

	query, _ := args["query"].(string)
	numResults := intArg(args, "num_results", defaultNumResults)

	payload, err := json.Marshal(map[string]any{"q": query, "num": numResults})
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Web search failed: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Web search failed: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", w.apiKey)

	resp, err := w.client.Do(req)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Web search failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Web search failed: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return map[string]any{"error": fmt.Sprintf("Web search failed: HTTP %d", resp.StatusCode)}
	}

	var parsed struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]any{"error": fmt.Sprintf("Web search failed: %v", err)}
	}

	results := make([]map[string]any, 0, numResults)
	for i, item := range parsed.Organic {
		if i >= numResults {
			break
		}
		results = append(results, map[string]any{
			"title":   item.Title,
			"link":    item.Link,
			"snippet": item.Snippet,
		})
	}

	return map[string]any{
		"success":       true,
		"query":         query,
		"results":       results,
		"total_results": len(results),
	}
}

// intArg reads an integer argument, tolerating the float64 the JSON decoder
// produces and falling back to a default.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
