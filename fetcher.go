package aivis

import "context"

// Fetcher retrieves cleaned text content from websites.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns its text content
	// with markup stripped, whitespace collapsed, and length capped.
	// Network failures, non-2xx statuses and unparseable bodies return an
	// EFETCH error after retries are exhausted.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchManifest checks the site's well-known llms.txt path. A found
	// manifest overrides the fetched page text entirely. Absence and
	// transport errors both report found=false; the check never fails a
	// run.
	FetchManifest(ctx context.Context, url string) (content string, found bool)
}

// Cleaner turns raw HTML into plain text suitable for an LLM prompt.
type Cleaner interface {
	// Clean strips script/style markup, extracts the text content and
	// collapses runs of whitespace into single spaces.
	Clean(html string) (string, error)
}
