package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Extraction strategy names.
const (
	StrategyHeuristic   = "heuristic"
	StrategyReadability = "readability"
	StrategyTrafilatura = "trafilatura"
)

// Config is the program configuration. Values are layered: built-in
// defaults, then the YAML file, then environment variables, then flags.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Extract ExtractConfig `yaml:"extract"`
	LLM     LLMConfig     `yaml:"llm"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`

	// RateLimit is the allowed requests per second per client. Zero disables
	// rate limiting.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// FetchConfig configures article retrieval.
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout" validate:"gt=0"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

// ExtractConfig selects the content extraction strategy.
type ExtractConfig struct {
	Strategy string `yaml:"strategy" validate:"oneof=heuristic readability trafilatura"`
}

// LLMConfig configures the completion provider.
type LLMConfig struct {
	Provider string        `yaml:"provider" validate:"oneof=openai gemini"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:  ":8080",
			Burst: 5,
		},
		Fetch: FetchConfig{
			Timeout:      15 * time.Second,
			MaxBodyBytes: 5 << 20,
		},
		Extract: ExtractConfig{
			Strategy: StrategyHeuristic,
		},
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			Timeout:  60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path, if
// path is non-empty, and then with environment variables read via getenv.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Server.Addr, "REPURPOSE_ADDR")
	setString(&c.Extract.Strategy, "REPURPOSE_EXTRACTOR")
	setString(&c.LLM.Provider, "REPURPOSE_PROVIDER")
	setString(&c.LLM.Model, "REPURPOSE_MODEL")
	setString(&c.LLM.BaseURL, "REPURPOSE_BASE_URL")
	setString(&c.LLM.APIKey, "REPURPOSE_API_KEY")
	setString(&c.Log.Level, "REPURPOSE_LOG_LEVEL")

	if v := getenv("REPURPOSE_RATE_LIMIT"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("REPURPOSE_RATE_LIMIT: %w", err)
		}
		c.Server.RateLimit = rps
	}
	if v := getenv("REPURPOSE_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REPURPOSE_FETCH_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}
	return nil
}

// ResolveAPIKey fills LLM.APIKey from the provider-specific environment
// variables when no key was configured. Call it after the provider is final.
func (c *Config) ResolveAPIKey(getenv func(string) string) {
	if c.LLM.APIKey != "" {
		return
	}
	for _, key := range apiKeyEnv(c.LLM.Provider) {
		if v := getenv(key); v != "" {
			c.LLM.APIKey = v
			return
		}
	}
}

// apiKeyEnv lists the provider-specific API key variables in lookup order.
func apiKeyEnv(provider string) []string {
	switch provider {
	case ProviderGemini:
		return []string{"GEMINI_API_KEY"}
	default:
		return []string{"GROQ_API_KEY", "OPENAI_API_KEY"}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate reports the first invalid setting using its YAML path.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	_, field, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("invalid config: %s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "required":
		return fmt.Errorf("invalid config: %s is required", field)
	default:
		return fmt.Errorf("invalid config: %s failed %q validation", field, fe.Tag())
	}
}

// LogLevel returns the slog level for Log.Level.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
