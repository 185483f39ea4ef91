// Package openai implements repurpose.Completer against any
// OpenAI-compatible chat completions API, Groq by default.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/repurpose"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Provider defaults.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
)

// DefaultRequestTimeout bounds a single completion request.
const DefaultRequestTimeout = 60 * time.Second

// Ensure Completer implements repurpose.Completer at compile time.
var _ repurpose.Completer = (*Completer)(nil)

// Completer sends chat completion requests with a fixed model and
// generation parameters.
type Completer struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// Config holds connection settings for the provider.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// Timeout bounds each request. Zero means DefaultRequestTimeout.
	Timeout time.Duration
}

// NewCompleter creates a Completer. SDK retries are disabled so each call
// is a single attempt.
func NewCompleter(cfg Config, opts ...option.RequestOption) *Completer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultRequestTimeout
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}
	reqOpts = append(reqOpts, opts...)

	return &Completer{
		client:      openai.NewClient(reqOpts...),
		model:       cfg.Model,
		temperature: repurpose.DefaultTemperature,
		maxTokens:   repurpose.DefaultMaxTokens,
	}
}

// Model returns the model identifier used for completions.
func (c *Completer) Model() string {
	return c.model
}

// Complete implements repurpose.Completer.
func (c *Completer) Complete(ctx context.Context, prompt repurpose.Prompt) (string, error) {
	if prompt.User == "" {
		return "", repurpose.Errorf(repurpose.EINVALID, "prompt required")
	}

	resp, err := c.client.Chat.Completions.New(ctx, BuildParams(c.model, prompt, c.temperature, c.maxTokens))
	if err != nil {
		return "", repurpose.WrapError(repurpose.ECOMPLETION, err, "the language model request failed")
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", repurpose.Errorf(repurpose.ECOMPLETION, "the language model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", repurpose.Errorf(repurpose.ECOMPLETION, "the language model returned an empty reply")
	}
	return content, nil
}

// BuildParams returns the request parameters for a prompt.
func BuildParams(model string, prompt repurpose.Prompt, temperature float64, maxTokens int64) openai.ChatCompletionNewParams {
	var msgs []openai.ChatCompletionMessageParamUnion
	if prompt.System != "" {
		msgs = append(msgs, openai.SystemMessage(prompt.System))
	}
	msgs = append(msgs, openai.UserMessage(prompt.User))

	return openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            msgs,
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}
}
