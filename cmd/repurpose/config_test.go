package main_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/repurpose/cmd/repurpose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// env returns a getenv func backed by a map.
func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repurpose.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults without file or environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig("", env(nil))

		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(), cfg)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, main.StrategyHeuristic, cfg.Extract.Strategy)
		assert.Equal(t, main.ProviderOpenAI, cfg.LLM.Provider)
	})

	t.Run("reads YAML over defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
server:
  addr: ":9000"
  rate_limit: 2.5
fetch:
  timeout: 5s
extract:
  strategy: trafilatura
llm:
  provider: gemini
  model: gemini-2.5-pro
log:
  level: debug
`)

		cfg, err := main.LoadConfig(path, env(nil))

		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.InDelta(t, 2.5, cfg.Server.RateLimit, 0.001)
		assert.Equal(t, 5, cfg.Server.Burst)
		assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, main.StrategyTrafilatura, cfg.Extract.Strategy)
		assert.Equal(t, main.ProviderGemini, cfg.LLM.Provider)
		assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	})

	t.Run("environment overrides YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "server:\n  addr: \":9000\"\nllm:\n  model: from-file\n")

		cfg, err := main.LoadConfig(path, env(map[string]string{
			"REPURPOSE_ADDR":          ":7000",
			"REPURPOSE_MODEL":         "from-env",
			"REPURPOSE_RATE_LIMIT":    "3",
			"REPURPOSE_FETCH_TIMEOUT": "2s",
		}))

		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, "from-env", cfg.LLM.Model)
		assert.InDelta(t, 3.0, cfg.Server.RateLimit, 0.001)
		assert.Equal(t, 2*time.Second, cfg.Fetch.Timeout)
	})

	t.Run("rejects malformed numeric environment values", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig("", env(map[string]string{"REPURPOSE_RATE_LIMIT": "fast"}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REPURPOSE_RATE_LIMIT")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), env(nil))

		require.Error(t, err)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(writeConfig(t, "server: [unclosed"), env(nil))

		require.Error(t, err)
	})
}

func TestConfig_ResolveAPIKey(t *testing.T) {
	t.Parallel()

	t.Run("prefers GROQ_API_KEY for the openai provider", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.ResolveAPIKey(env(map[string]string{"GROQ_API_KEY": "groq", "OPENAI_API_KEY": "openai"}))

		assert.Equal(t, "groq", cfg.LLM.APIKey)
	})

	t.Run("falls back to OPENAI_API_KEY", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.ResolveAPIKey(env(map[string]string{"OPENAI_API_KEY": "openai"}))

		assert.Equal(t, "openai", cfg.LLM.APIKey)
	})

	t.Run("uses GEMINI_API_KEY for the gemini provider", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.LLM.Provider = main.ProviderGemini
		cfg.ResolveAPIKey(env(map[string]string{"GROQ_API_KEY": "groq", "GEMINI_API_KEY": "gemini"}))

		assert.Equal(t, "gemini", cfg.LLM.APIKey)
	})

	t.Run("keeps an explicit key", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.LLM.APIKey = "explicit"
		cfg.ResolveAPIKey(env(map[string]string{"GROQ_API_KEY": "groq"}))

		assert.Equal(t, "explicit", cfg.LLM.APIKey)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts defaults", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()

		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.LLM.Provider = "anthropic"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.provider must be one of [openai gemini]")
	})

	t.Run("rejects unknown extraction strategy", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Extract.Strategy = "magic"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "extract.strategy")
	})

	t.Run("rejects empty address", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Server.Addr = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.addr is required")
	})

	t.Run("rejects negative rate limit", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Server.RateLimit = -1

		assert.Error(t, cfg.Validate())
	})
}
