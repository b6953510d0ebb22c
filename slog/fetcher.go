// Package slog provides logging decorators for aivis domain interfaces
// using the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkarolik/aivis"
)

// Ensure LoggingFetcher implements aivis.Fetcher at compile time.
var _ aivis.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch timing and size logging.
type LoggingFetcher struct {
	next   aivis.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next aivis.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	text, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}

// FetchManifest delegates to the wrapped fetcher and logs whether the
// well-known manifest was found.
func (f *LoggingFetcher) FetchManifest(ctx context.Context, url string) (string, bool) {
	content, found := f.next.FetchManifest(ctx, url)
	f.logger.Info("manifest check",
		"url", url,
		"found", found,
	)
	return content, found
}
