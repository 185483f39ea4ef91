package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/repurpose"
)

// Ensure LoggingExtractor implements repurpose.Extractor.
var _ repurpose.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   repurpose.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next repurpose.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *repurpose.ExtractResult, err error) {
	defer func(begin time.Time) {
		var chars int
		var source string
		if result != nil {
			chars = utf8.RuneCountInString(result.Text)
			source = result.Source
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"chars", chars,
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
