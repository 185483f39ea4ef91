// Package readability implements repurpose.Extractor with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/repurpose"
	"github.com/go-shiori/go-readability"
)

// Source labels results produced by this package.
const Source = "readability"

// Ensure Extractor implements repurpose.Extractor at compile time.
var _ repurpose.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, repurpose.WrapError(repurpose.EEXTRACT, err, "could not find article text on the page")
	}

	text, err := repurpose.FinalizeText(article.TextContent)
	if err != nil {
		return nil, err
	}

	return &repurpose.ExtractResult{
		Title:  strings.TrimSpace(article.Title),
		Text:   text,
		Source: Source,
	}, nil
}
