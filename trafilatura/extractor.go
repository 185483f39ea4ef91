// Package trafilatura implements repurpose.Extractor with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/repurpose"
	"github.com/markusmobius/go-trafilatura"
)

// Source labels results produced by this package.
const Source = "trafilatura"

// Ensure Extractor implements repurpose.Extractor at compile time.
var _ repurpose.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*repurpose.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, repurpose.Errorf(repurpose.EEXTRACT, "the page is empty")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, repurpose.WrapError(repurpose.EEXTRACT, err, "could not find article text on the page")
	}

	text, err := repurpose.FinalizeText(result.ContentText)
	if err != nil {
		return nil, err
	}

	return &repurpose.ExtractResult{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Text:   text,
		Source: Source,
	}, nil
}
