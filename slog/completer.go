package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/repurpose"
)

// Ensure LoggingCompleter implements repurpose.Completer.
var _ repurpose.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Prompt and reply bodies
// are logged at debug level only.
type LoggingCompleter struct {
	next   repurpose.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next repurpose.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt repurpose.Prompt) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("complete",
			"prompt_bytes", len(prompt.System)+len(prompt.User),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
		c.logger.Debug("completion reply", "reply", reply)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
