package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/repurpose"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     Config
	Logger     *slog.Logger
	Repurposer repurpose.Repurposer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"c" help:"Path to a YAML config file"`
	Provider  string `help:"Completion provider (openai, gemini)"`
	Model     string `help:"Model identifier"`
	BaseURL   string `name:"base-url" help:"OpenAI-compatible API base URL"`
	Extractor string `help:"Extraction strategy (heuristic, readability, trafilatura)"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	Serve    ServeCmd    `cmd:"" help:"Run the HTTP API"`
	Generate GenerateCmd `cmd:"" help:"Repurpose one article and print the result"`
}

// Apply overrides cfg with every flag that was set.
func (c *CLI) Apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.LLM.Provider, c.Provider)
	set(&cfg.LLM.Model, c.Model)
	set(&cfg.LLM.BaseURL, c.BaseURL)
	set(&cfg.Extract.Strategy, c.Extractor)
	set(&cfg.Log.Level, c.LogLevel)
	set(&cfg.Server.Addr, c.Serve.Addr)
	if c.Serve.RateLimit > 0 {
		cfg.Server.RateLimit = c.Serve.RateLimit
	}
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `short:"a" help:"Listen address (default :8080)"`
	RateLimit float64 `name:"rate-limit" help:"Requests per second allowed per client (0 uses the config value)"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Tone   string `short:"t" default:"professional" help:"Tone: professional, casual, viral, educational or witty"`
	Format string `short:"f" enum:"text,json,raw" default:"text" help:"Output format: text, json or raw"`
}
