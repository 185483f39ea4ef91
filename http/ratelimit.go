package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdleTimeout is how long a client may stay silent before its
// limiter is dropped.
const DefaultClientIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key gets its own limiter so one busy client cannot exhaust
// the budget of the others. Limiters of clients idle for longer than the
// idle timeout are evicted, so memory is bounded by the number of clients
// seen within one idle window.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       float64
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiterOption configures a ClientLimiter.
type ClientLimiterOption func(*ClientLimiter)

// WithIdleTimeout sets how long an unused client limiter is kept.
func WithIdleTimeout(d time.Duration) ClientLimiterOption {
	return func(l *ClientLimiter) {
		if d > 0 {
			l.idle = d
		}
	}
}

// NewClientLimiter creates a new ClientLimiter allowing rps requests per
// second with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int, opts ...ClientLimiterOption) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &ClientLimiter{
		clients:   make(map[string]*clientEntry),
		rps:       rps,
		burst:     burst,
		idle:      DefaultClientIdleTimeout,
		lastSweep: time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether the client may make a request now. It never blocks.
func (l *ClientLimiter) Allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	entry, ok := l.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients idle since before now minus the idle timeout.
// Callers must hold mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for client, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}
