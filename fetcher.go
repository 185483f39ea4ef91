package repurpose

import "context"

// Fetcher retrieves raw HTML from article URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the document body.
	// The context controls timeout and cancellation.
	// Returns EFETCH on network failure, non-2xx status, or timeout.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
