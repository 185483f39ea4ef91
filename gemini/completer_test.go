package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/repurpose"
	"github.com/fwojciec/repurpose/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)
	return client
}

func TestCompleter_Complete_ReturnsText(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"meta\":\"d\"}"}]},"finishReason":"STOP"}]}`))
	})

	got, err := gemini.NewCompleter(client, "").Complete(context.Background(), repurpose.Prompt{System: "s", User: "u"})

	require.NoError(t, err)
	assert.Equal(t, `{"meta":"d"}`, got)
}

func TestCompleter_Complete_WrapsProviderErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
	})

	_, err := gemini.NewCompleter(client, "").Complete(context.Background(), repurpose.Prompt{User: "u"})

	require.Error(t, err)
	assert.Equal(t, repurpose.ECOMPLETION, repurpose.ErrorCode(err))
	assert.NotContains(t, repurpose.ErrorMessage(err), "overloaded")
}

func TestCompleter_Complete_ReturnsErrorWhenReplyEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := gemini.NewCompleter(client, "").Complete(context.Background(), repurpose.Prompt{User: "u"})

	require.Error(t, err)
	assert.Equal(t, repurpose.ECOMPLETION, repurpose.ErrorCode(err))
}

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := completer.Complete(context.Background(), repurpose.Prompt{System: "s"})

	require.Error(t, err)
	assert.Equal(t, repurpose.EINVALID, repurpose.ErrorCode(err))
	assert.Contains(t, repurpose.ErrorMessage(err), "prompt required")
}

func TestNewCompleter_DefaultsModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.NewCompleter(nil, "").Model())
	assert.Equal(t, "gemini-2.5-pro", gemini.NewCompleter(nil, "gemini-2.5-pro").Model())
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("You are a senior growth marketer.")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "growth marketer")
}

func TestBuildConfig_OmitsEmptySystemInstruction(t *testing.T) {
	t.Parallel()

	assert.Nil(t, gemini.BuildConfig("").SystemInstruction)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
}

func TestBuildConfig_SetsMaxOutputTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(2048), gemini.BuildConfig("").MaxOutputTokens)
}
