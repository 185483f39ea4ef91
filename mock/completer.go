package mock

import (
	"context"

	"github.com/fwojciec/repurpose"
)

var _ repurpose.Completer = (*Completer)(nil)

// Completer is a mock implementation of repurpose.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt repurpose.Prompt) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt repurpose.Prompt) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
