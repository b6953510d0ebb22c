// Package tavily provides a unified AI-optimized search tool backed by the
// Tavily API. It can serve both the web-search and news-search roles in one
// call and is preferred over the single-purpose tools when credentialed.
package tavily

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

// DefaultBaseURL is the Tavily API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

const defaultMaxResults = 5

// Ensure UnifiedSearch implements aivis.Tool at compile time.
var _ aivis.Tool = (*UnifiedSearch)(nil)

// UnifiedSearch is an aivis.Tool for AI-optimized search with an optional
// synthesized answer. It fails soft like every tool.
type UnifiedSearch struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option configures a UnifiedSearch tool.
type Option func(*UnifiedSearch)

// WithBaseURL overrides the API endpoint. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(u *UnifiedSearch) {
		u.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(u *UnifiedSearch) {
		u.client = client
	}
}

// NewUnifiedSearch creates the tool. An empty apiKey is allowed;
// invocations then report a configuration error in-band.
func NewUnifiedSearch(apiKey string, opts ...Option) *UnifiedSearch {
	u := &UnifiedSearch{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.client == nil {
		u.client = &http.Client{Timeout: 30 * time.Second}
	}
	return u
}

// Definition returns the function-calling contract for the tool.
func (u *UnifiedSearch) Definition() aivis.ToolDefinition {
	return aivis.ToolDefinition{
		Name:        "tavily_search",
		Description: "Search the web for current information, news, and company data using AI-optimized search",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query to execute",
				},
				"search_depth": map[string]any{
					"type":        "string",
					"description": "Search depth: 'basic' for quick results or 'advanced' for comprehensive search",
					"enum":        []string{"basic", "advanced"},
				},
				"max_results": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 5)",
				},
				"include_answer": map[string]any{
					"type":        "boolean",
					"description": "Whether to include a summarized answer (default: true)",
				},
				"include_images": map[string]any{
					"type":        "boolean",
					"description": "Whether to include relevant images (default: false)",
				},
				"include_raw_content": map[string]any{
					"type":        "boolean",
					"description": "Whether to include raw page content (default: false)",
				},
			},
			"required": []string{
				"query", "search_depth", "max_results",
				"include_answer", "include_images", "include_raw_content",
			},
			"additionalProperties": false,
		},
	}
}

// Invoke executes the search.
func (u *UnifiedSearch) Invoke(ctx context.Context, args map[string]any) map[string]any {
	if u.apiKey == "" {
		return map[string]any{"error": "Tavily API key not configured"}
	}

	query, _ := args["query"].(string)
	searchDepth, ok := args["search_depth"].(string)
	if !ok || searchDepth == "" {
		searchDepth = "basic"
	}
	maxResults := intArg(args, "max_results", defaultMaxResults)
	includeAnswer := boolArg(args, "include_answer", true)
	includeImages := boolArg(args, "include_images", false)
	includeRawContent := boolArg(args, "include_raw_content", false)

	payload, err := json.Marshal(map[string]any{
		"api_key":             u.apiKey,
		"query":               query,
		"search_depth":        searchDepth,
		"max_results":         maxResults,
		"include_answer":      includeAnswer,
		"include_images":      includeImages,
		"include_raw_content": includeRawContent,
	})
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: HTTP %d", resp.StatusCode)}
	}

	var parsed struct {
		Answer  string `json:"answer"`
		Results []struct {
			Title         string  `json:"title"`
			URL           string  `json:"url"`
			Content       string  `json:"content"`
			Score         float64 `json:"score"`
			PublishedDate string  `json:"published_date"`
		} `json:"results"`
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]any{"error": fmt.Sprintf("Tavily search failed: %v", err)}
	}

	results := make([]map[string]any, 0, len(parsed.Results))
	for _, item := range parsed.Results {
		results = append(results, map[string]any{
			"title":          item.Title,
			"url":            item.URL,
			"content":        item.Content,
			"score":          item.Score,
			"published_date": item.PublishedDate,
		})
	}

	formatted := map[string]any{
		"success":       true,
		"query":         query,
		"answer":        parsed.Answer,
		"results":       results,
		"total_results": len(results),
	}
	if includeImages && len(parsed.Images) > 0 {
		formatted["images"] = parsed.Images
	}

	return formatted
}

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

func boolArg(args map[string]any, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}
