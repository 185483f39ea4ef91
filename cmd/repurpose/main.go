package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/repurpose"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the process environment before configuration
	// is read. Variables already set are not overridden. A missing file is
	// ignored.
	EnvFile string

	// Getenv reads environment variables.
	Getenv func(string) string

	// Repurposer replaces the configured pipeline. Used for end-to-end testing.
	Repurposer repurpose.Repurposer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		Getenv:  os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("repurpose"),
		kong.Description("Turn a blog post into LinkedIn posts, tweets, SEO meta tags and a YouTube description"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'repurpose --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		return err
	}
	cli.Apply(&cfg)
	cfg.ResolveAPIKey(m.Getenv)
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps.Config = cfg
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	if m.Repurposer != nil {
		deps.Repurposer = m.Repurposer
	} else {
		p, err := NewPipeline(ctx, cfg, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, apiKeyHint(cfg.LLM.Provider))
			return err
		}
		defer p.Fetcher.Close()
		deps.Repurposer = p
	}

	return kongCtx.Run(deps)
}

func apiKeyHint(provider string) string {
	if provider == ProviderGemini {
		return "Hint: set GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey"
	}
	return "Hint: set GROQ_API_KEY (https://console.groq.com/keys) or OPENAI_API_KEY with --provider openai"
}
