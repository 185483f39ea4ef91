// Package pipeline runs the fetch, extract, complete and normalize stages
// for a single repurposing request.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/repurpose"
)

// DefaultCompletionTimeout bounds the completion stage when
// Pipeline.CompletionTimeout is zero.
const DefaultCompletionTimeout = 60 * time.Second

// Ensure Pipeline implements repurpose.Repurposer at compile time.
var _ repurpose.Repurposer = (*Pipeline)(nil)

// Pipeline implements repurpose.Repurposer. Stages run in order and the
// first failure ends the request. It holds no mutable state and is safe
// for concurrent use.
type Pipeline struct {
	Fetcher    repurpose.Fetcher
	Extractor  repurpose.Extractor
	Completer  repurpose.Completer
	Normalizer repurpose.Normalizer

	CompletionTimeout time.Duration
}

// Repurpose implements repurpose.Repurposer.
func (p *Pipeline) Repurpose(ctx context.Context, req *repurpose.Request) (*repurpose.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tone := repurpose.ParseTone(string(req.Tone))

	html, err := p.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, classify(err, repurpose.EFETCH, "could not fetch content from the URL")
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, classify(err, repurpose.EEXTRACT, "could not extract article text from the page")
	}

	raw, err := p.complete(ctx, repurpose.BuildPrompt(extracted.Text, tone))
	if err != nil {
		return nil, err
	}

	content, err := p.Normalizer.Normalize(raw)
	if err != nil {
		return nil, classify(err, repurpose.EMALFORMED, "the model reply could not be parsed")
	}

	return &repurpose.Result{
		URL:      req.URL,
		Title:    extracted.Title,
		Tone:     tone,
		Raw:      raw,
		Content:  content,
		Warnings: content.Advisories(),
	}, nil
}

func (p *Pipeline) complete(ctx context.Context, prompt repurpose.Prompt) (string, error) {
	timeout := p.CompletionTimeout
	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := p.Completer.Complete(ctx, prompt)
	if err != nil {
		return "", classify(err, repurpose.ECOMPLETION, "the language model request failed")
	}
	if strings.TrimSpace(raw) == "" {
		return "", repurpose.Errorf(repurpose.ECOMPLETION, "the language model returned an empty reply")
	}
	return raw, nil
}

// classify gives errors without an application code the code of the stage
// that produced them.
func classify(err error, code, message string) error {
	if repurpose.ErrorCode(err) != repurpose.EINTERNAL {
		return err
	}
	return repurpose.WrapError(code, err, "%s", message)
}
