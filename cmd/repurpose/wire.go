package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/repurpose"
	"github.com/fwojciec/repurpose/gemini"
	"github.com/fwojciec/repurpose/gjson"
	"github.com/fwojciec/repurpose/goquery"
	repurposehttp "github.com/fwojciec/repurpose/http"
	"github.com/fwojciec/repurpose/openai"
	"github.com/fwojciec/repurpose/pipeline"
	"github.com/fwojciec/repurpose/readability"
	rslog "github.com/fwojciec/repurpose/slog"
	"github.com/fwojciec/repurpose/trafilatura"
	"google.golang.org/genai"
)

// NewPipeline wires the configured components into a pipeline. Every stage
// is wrapped with logging.
func NewPipeline(ctx context.Context, cfg Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	completer, err := NewCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	extractor, err := NewExtractor(cfg.Extract.Strategy)
	if err != nil {
		return nil, err
	}

	return &pipeline.Pipeline{
		Fetcher:           rslog.NewLoggingFetcher(NewFetcher(cfg.Fetch), logger),
		Extractor:         rslog.NewLoggingExtractor(extractor, logger),
		Completer:         rslog.NewLoggingCompleter(completer, logger),
		Normalizer:        gjson.NewNormalizer(),
		CompletionTimeout: cfg.LLM.Timeout,
	}, nil
}

// NewFetcher returns the HTTP fetcher for cfg.
func NewFetcher(cfg FetchConfig) *repurposehttp.Fetcher {
	opts := []repurposehttp.Option{
		repurposehttp.WithTimeout(cfg.Timeout),
		repurposehttp.WithMaxBodyBytes(cfg.MaxBodyBytes),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, repurposehttp.WithUserAgent(cfg.UserAgent))
	}
	return repurposehttp.NewFetcher(opts...)
}

// NewExtractor returns the extractor for a strategy name.
func NewExtractor(strategy string) (repurpose.Extractor, error) {
	switch strategy {
	case StrategyHeuristic, "":
		return goquery.NewExtractor(), nil
	case StrategyReadability:
		return readability.NewExtractor(), nil
	case StrategyTrafilatura:
		return trafilatura.NewExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
	}
}

// NewCompleter returns the completer for the configured provider.
func NewCompleter(ctx context.Context, cfg LLMConfig) (repurpose.Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %q", cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return openai.NewCompleter(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}), nil
	case ProviderGemini:
		clientConfig := &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if cfg.BaseURL != "" {
			clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
