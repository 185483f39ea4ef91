// Package gemini implements repurpose.Completer using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/repurpose"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements repurpose.Completer at compile time.
var _ repurpose.Completer = (*Completer)(nil)

// Completer implements repurpose.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
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
	if c.client == nil {
		return "", repurpose.Errorf(repurpose.EINTERNAL, "gemini client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt.User}},
		}},
		BuildConfig(prompt.System),
	)
	if err != nil {
		return "", repurpose.WrapError(repurpose.ECOMPLETION, err, "the language model request failed")
	}
	if result == nil {
		return "", repurpose.Errorf(repurpose.ECOMPLETION, "the language model returned no result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", repurpose.Errorf(repurpose.ECOMPLETION, "the language model returned an empty reply")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(repurpose.DefaultTemperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: repurpose.DefaultMaxTokens,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
