// Package newsapi provides a recent-news tool backed by NewsAPI.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mkarolik/aivis"
)

// DefaultBaseURL is the NewsAPI endpoint.
const DefaultBaseURL = "https://newsapi.org"

const (
	defaultDaysBack    = 28
	defaultMaxArticles = 5
)

// Ensure NewsSearch implements aivis.Tool at compile time.
var _ aivis.Tool = (*NewsSearch)(nil)

// NewsSearch is an aivis.Tool that fetches recent news articles about a
// topic or company within a rolling lookback window. It fails soft.
type NewsSearch struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// Option configures a NewsSearch tool.
type Option func(*NewsSearch)

// WithBaseURL overrides the API endpoint. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(n *NewsSearch) {
		n.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(n *NewsSearch) {
		n.client = client
	}
}

// WithClock overrides the clock used to compute the lookback window.
func WithClock(now func() time.Time) Option {
	return func(n *NewsSearch) {
		n.now = now
	}
}

// NewNewsSearch creates the tool. An empty apiKey is allowed; invocations
// then report a configuration error in-band.
func NewNewsSearch(apiKey string, opts ...Option) *NewsSearch {
	n := &NewsSearch{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.client == nil {
		n.client = &http.Client{Timeout: 10 * time.Second}
	}
	return n
}

// Definition returns the function-calling contract for the tool.
func (n *NewsSearch) Definition() aivis.ToolDefinition {
	return aivis.ToolDefinition{
		Name:        "get_recent_news",
		Description: "Get recent news articles about a specific topic or company",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic": map[string]any{
					"type":        "string",
					"description": "The topic or company to search for in news articles",
				},
				"days_back": map[string]any{
					"type":        "integer",
					"description": "Number of days back to search (default: 28)",
				},
				"max_articles": map[string]any{
					"type":        "integer",
					"description": "Maximum number of articles to return (default: 5)",
				},
			},
			"required":             []string{"topic", "days_back", "max_articles"},
			"additionalProperties": false,
		},
	}
}

// Invoke executes the news search.
func (n *NewsSearch) Invoke(ctx context.Context, args map[string]any) map[string]any {
	if n.apiKey == "" {
		return map[string]any{"error": "News API key not configured"}
	}

	topic, _ := args["topic"].(string)
	daysBack := intArg(args, "days_back", defaultDaysBack)
	maxArticles := intArg(args, "max_articles", defaultMaxArticles)

	fromDate := n.now().AddDate(0, 0, -daysBack).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", topic)
	params.Set("from", fromDate)
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", n.apiKey)
	params.Set("pageSize", strconv.Itoa(maxArticles))
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("News search failed: %v", err)}
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("News search failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("News search failed: %v", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return map[string]any{"error": fmt.Sprintf("News search failed: HTTP %d", resp.StatusCode)}
	}

	var parsed struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]any{"error": fmt.Sprintf("News search failed: %v", err)}
	}

	articles := make([]map[string]any, 0, maxArticles)
	for i, article := range parsed.Articles {
		if i >= maxArticles {
			break
		}
		articles = append(articles, map[string]any{
			"title":        article.Title,
			"description":  article.Description,
			"url":          article.URL,
			"published_at": article.PublishedAt,
			"source":       article.Source.Name,
		})
	}

	return map[string]any{
		"success":        true,
		"topic":          topic,
		"articles":       articles,
		"total_articles": len(articles),
	}
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
