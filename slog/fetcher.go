// Package slog provides log/slog decorators for the pipeline components.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/repurpose"
)

// Ensure LoggingFetcher implements repurpose.Fetcher.
var _ repurpose.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and records one log line per article
// download. Failures are logged at warn level with their error code.
type LoggingFetcher struct {
	next   repurpose.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next repurpose.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the article host, the
// body size and, on failure, the error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", rawURL,
			"host", hostOf(rawURL),
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", repurpose.ErrorCode(err), "err", err)
			f.logger.Warn("fetch failed", attrs...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
