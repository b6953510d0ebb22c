package mock

import "github.com/mkarolik/aivis"

var _ aivis.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of aivis.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
