package main

import (
	"context"
	"time"

	repurposehttp "github.com/fwojciec/repurpose/http"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const ShutdownTimeout = 30 * time.Second

// Run executes the serve command. It blocks until the context is canceled
// or the listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config.Server

	opts := []repurposehttp.ServerOption{repurposehttp.WithLogger(deps.Logger)}
	if cfg.RateLimit > 0 {
		opts = append(opts, repurposehttp.WithRateLimiter(repurposehttp.NewClientLimiter(cfg.RateLimit, cfg.Burst)))
	}
	server := repurposehttp.NewServer(cfg.Addr, deps.Repurposer, opts...)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
