// Package http provides the HTTP implementations of repurpose.Fetcher and
// the JSON API server.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/repurpose"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for article requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is sent with every request. Many sites reject the Go
// default user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 5 << 20

// Ensure Fetcher implements repurpose.Fetcher at compile time.
var _ repurpose.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content with a single GET request. It does not
// execute JavaScript.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes sets how many bytes of the body are read. Anything past
// the limit is discarded.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithHTTPClient uses the given client instead of a new one. The client's
// own Timeout is replaced by the fetcher timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	} else {
		c := *f.client
		f.client = &c
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", repurpose.Errorf(repurpose.EINVALID, "URL must be a valid http or https address")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", repurpose.WrapError(repurpose.EINVALID, err, "URL must be a valid http or https address")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", repurpose.WrapError(repurpose.EFETCH, err, "timed out fetching content from the URL")
		}
		return "", repurpose.WrapError(repurpose.EFETCH, err, "could not fetch content from the URL")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", repurpose.Errorf(repurpose.EFETCH, "could not fetch content from the URL (HTTP %d)", resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodyBytes), resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", repurpose.WrapError(repurpose.EFETCH, err, "could not decode the page")
	}

	b, err := io.ReadAll(body)
	if err != nil {
		if isTimeout(err) {
			return "", repurpose.WrapError(repurpose.EFETCH, err, "timed out fetching content from the URL")
		}
		return "", repurpose.WrapError(repurpose.EFETCH, err, "could not read the page")
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
