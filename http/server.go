package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/repurpose"
	"github.com/google/uuid"
)

// MaxRequestBodyBytes caps the size of API request bodies.
const MaxRequestBodyBytes = 1 << 20

// Server timeouts. WriteTimeout leaves room for a slow fetch followed by a
// slow completion.
const (
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 90 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
)

// Server serves the JSON API.
type Server struct {
	server     *http.Server
	router     *http.ServeMux
	repurposer repurpose.Repurposer
	logger     *slog.Logger
	limiter    *ClientLimiter
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimiter limits /api requests per client address.
func WithRateLimiter(l *ClientLimiter) ServerOption {
	return func(s *Server) {
		s.limiter = l
	}
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, r repurpose.Repurposer, opts ...ServerOption) *Server {
	s := &Server{
		router:     http.NewServeMux(),
		repurposer: r,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.HandleFunc("GET /healthz", s.handleHealth)
	s.router.Handle("POST /api/repurpose", s.rateLimit(http.HandlerFunc(s.handleRepurpose)))

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}
	return s
}

// Handler returns the root handler including request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.router)
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// repurposeResponse is the body of a successful /api/repurpose call.
type repurposeResponse struct {
	Success  bool                         `json:"success"`
	Raw      string                       `json:"raw"`
	Content  *repurpose.RepurposedContent `json:"content"`
	Title    string                       `json:"title"`
	Tone     repurpose.Tone               `json:"tone"`
	Warnings []repurpose.Advisory         `json:"warnings"`
}

func (s *Server) handleRepurpose(w http.ResponseWriter, r *http.Request) {
	var req repurpose.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.Error(w, r, repurpose.WrapError(repurpose.EINVALID, err, "request body too large"))
			return
		}
		s.Error(w, r, repurpose.WrapError(repurpose.EINVALID, err, "request body must be a JSON object with a url field"))
		return
	}

	result, err := s.repurposer.Repurpose(r.Context(), &req)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []repurpose.Advisory{}
	}
	writeJSON(w, http.StatusOK, repurposeResponse{
		Success:  true,
		Raw:      result.Raw,
		Content:  result.Content,
		Title:    result.Title,
		Tone:     result.Tone,
		Warnings: warnings,
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientAddr(r)) {
			s.Error(w, r, repurpose.Errorf(repurpose.ERATELIMIT, "too many requests, please try again later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type requestIDKey struct{}

// RequestIDFromContext returns the request id assigned by the server, or
// an empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.logger.Info("http request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(rec, r)
	})
}
