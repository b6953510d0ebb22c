// Package goquery provides HTML-to-text cleaning for fetched pages using
// CSS-selector based DOM traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarolik/aivis"
)

// Ensure Cleaner implements aivis.Cleaner at compile time.
var _ aivis.Cleaner = (*Cleaner)(nil)

// Cleaner extracts readable text from raw HTML. It removes script, style
// and noscript elements and collapses all whitespace runs into single
// spaces, matching what an LLM prompt wants to see.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean strips non-content markup and returns the page's plain text.
func (c *Cleaner) Clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", aivis.Errorf(aivis.EFETCH, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Text()

	return strings.Join(strings.Fields(text), " "), nil
}
