package mock

import "github.com/fwojciec/repurpose"

var _ repurpose.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of repurpose.Normalizer.
type Normalizer struct {
	NormalizeFn func(raw string) (*repurpose.RepurposedContent, error)
}

func (n *Normalizer) Normalize(raw string) (*repurpose.RepurposedContent, error) {
	return n.NormalizeFn(raw)
}
