package mock

import (
	"context"

	"github.com/mkarolik/aivis"
)

var _ aivis.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of aivis.Fetcher.
type Fetcher struct {
	FetchFn         func(ctx context.Context, url string) (string, error)
	FetchManifestFn func(ctx context.Context, url string) (string, bool)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) FetchManifest(ctx context.Context, url string) (string, bool) {
	if f.FetchManifestFn == nil {
		return "", false
	}
	return f.FetchManifestFn(ctx, url)
}
