package mock

import (
	"context"

	"github.com/fwojciec/repurpose"
)

var _ repurpose.Repurposer = (*Repurposer)(nil)

// Repurposer is a mock implementation of repurpose.Repurposer.
type Repurposer struct {
	RepurposeFn func(ctx context.Context, req *repurpose.Request) (*repurpose.Result, error)
}

func (r *Repurposer) Repurpose(ctx context.Context, req *repurpose.Request) (*repurpose.Result, error) {
	return r.RepurposeFn(ctx, req)
}
