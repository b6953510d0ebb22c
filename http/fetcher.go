// Package http provides the HTTP-based implementation of aivis.Fetcher for
// retrieving and sanitizing website content.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkarolik/aivis"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxChars caps the cleaned text length to respect downstream LLM
// context limits.
const DefaultMaxChars = 50000

// manifestTimeout bounds the optional llms.txt check separately from page
// fetches, since a missing manifest should fail fast.
const manifestTimeout = 10 * time.Second

// userAgent is a realistic browser user-agent; some sites refuse requests
// that identify as bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements aivis.Fetcher at compile time.
var _ aivis.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves website text content over HTTP. Redirects are followed,
// transient failures are retried with bounded exponential backoff, and the
// returned text is cleaned and truncated to maxChars.
type Fetcher struct {
	client      *http.Client
	cleaner     aivis.Cleaner
	timeout     time.Duration
	maxChars    int
	retryDelays []time.Duration
	logger      *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxChars sets the character budget for cleaned text.
// Defaults to DefaultMaxChars (50000) if not specified.
func WithMaxChars(n int) Option {
	return func(f *Fetcher) {
		f.maxChars = n
	}
}

// WithRetryDelays overrides the backoff schedule. Useful for testing
// without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// WithLogger sets the logger used for retry and truncation events.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The cleaner turns fetched
// HTML into plain text.
func NewFetcher(cleaner aivis.Cleaner, opts ...Option) *Fetcher {
	f := &Fetcher{
		cleaner:     cleaner,
		timeout:     DefaultFetchTimeout,
		maxChars:    DefaultMaxChars,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the cleaned text content of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := fetchWithRetryDelays(ctx, url, f.fetchOnce, f.logger, f.retryDelays)
	if err != nil {
		return "", aivis.Errorf(aivis.EFETCH, "fetching %q failed: %v", url, err)
	}

	text, err := f.cleaner.Clean(body)
	if err != nil {
		return "", aivis.Errorf(aivis.EFETCH, "processing content of %q failed: %v", url, err)
	}

	// maxChars is a character budget; truncating bytes could split a
	// multi-byte rune and hand invalid UTF-8 downstream.
	if chars := utf8.RuneCountInString(text); chars > f.maxChars {
		if f.logger != nil {
			f.logger.Warn("content truncated",
				"url", url,
				"original_length", chars,
				"max_chars", f.maxChars,
			)
		}
		text = string([]rune(text)[:f.maxChars])
	}

	return text, nil
}

// FetchManifest checks the site's well-known llms.txt path. It never fails
// a run: any error is reported as found=false.
func (f *Fetcher) FetchManifest(ctx context.Context, url string) (string, bool) {
	manifestURL := strings.TrimSuffix(url, "/") + "/llms.txt"

	ctx, cancel := context.WithTimeout(ctx, manifestTimeout)
	defer cancel()

	body, err := f.fetchOnce(ctx, manifestURL)
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(body), true
}

// fetchOnce performs a single GET attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", aivis.Errorf(aivis.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
