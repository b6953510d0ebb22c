// Package openai implements the LLM-backed components of the pipeline
// (profile extraction, question generation and tool-augmented probing)
// against an OpenAI-compatible chat completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/mkarolik/aivis"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the OpenAI API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "o4-mini"

// DefaultTimeout bounds a single chat completion round-trip. Each LLM call
// is timed out independently, not globally across the pipeline.
const DefaultTimeout = 120 * time.Second

// Client is a minimal chat completions client shared by the Extractor,
// Generator and Prober. It is safe for concurrent use.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithModel sets the model name. Defaults to DefaultModel.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL overrides the API endpoint. Useful for proxies, compatible
// backends, and tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-call timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit throttles chat calls across all goroutines sharing the
// client, so a burst of concurrent probes stays under the backend's
// request-per-second quota.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a chat completions client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// createChatCompletion issues one chat completions request and returns the
// first choice's message.
func (c *Client) createChatCompletion(ctx context.Context, req chatRequest) (*chatResponseMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, aivis.Errorf(aivis.EINTERNAL, "decoding chat response: %v", err)
	}
	if parsed.Error != nil {
		return nil, aivis.Errorf(aivis.EUNAVAILABLE, "chat backend error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, aivis.Errorf(aivis.EUNAVAILABLE, "chat backend returned HTTP %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, aivis.Errorf(aivis.EINTERNAL, "chat backend returned no choices")
	}

	return &parsed.Choices[0].Message, nil
}
