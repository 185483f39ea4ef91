package repurpose

import "context"

// Generation defaults shared by every Completer implementation.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
)

// Completer sends a prompt to a language model and returns its raw reply.
// Replies are not deterministic; callers must not rely on exact output.
type Completer interface {
	// Complete makes a single attempt and returns the model's text.
	// Returns ECOMPLETION if the provider fails, times out, or replies
	// with no content.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
