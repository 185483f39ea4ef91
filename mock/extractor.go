package mock

import "github.com/fwojciec/repurpose"

var _ repurpose.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of repurpose.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*repurpose.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*repurpose.ExtractResult, error) {
	return e.ExtractFn(html)
}
