package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/repurpose"
	"github.com/fwojciec/repurpose/mock"
	rslog "github.com/fwojciec/repurpose/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(buf *bytes.Buffer, fn func(ctx context.Context, url string) (string, error)) *rslog.LoggingFetcher {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return rslog.NewLoggingFetcher(&mock.Fetcher{FetchFn: fn}, logger)
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs host and body size of a downloaded article", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newFetcher(&buf, func(ctx context.Context, url string) (string, error) {
			return "<article>growth</article>", nil
		})

		html, err := fetcher.Fetch(context.Background(), "https://blog.example.com:8443/posts/loops?ref=x")

		require.NoError(t, err)
		assert.Equal(t, "<article>growth</article>", html)
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "host=blog.example.com")
		assert.Contains(t, out, "bytes=25")
		assert.NotContains(t, out, "code=")
	})

	t.Run("logs the fetch code when the download times out", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newFetcher(&buf, func(ctx context.Context, url string) (string, error) {
			return "", repurpose.WrapError(repurpose.EFETCH, context.DeadlineExceeded, "timed out fetching content from the URL")
		})

		_, err := fetcher.Fetch(context.Background(), "https://slow.example.com/post")

		require.Error(t, err)
		assert.Equal(t, repurpose.EFETCH, repurpose.ErrorCode(err))
		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, `msg="fetch failed"`)
		assert.Contains(t, out, "code=fetch")
		assert.Contains(t, out, "host=slow.example.com")
	})

	t.Run("reports internal for uncoded errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newFetcher(&buf, func(ctx context.Context, url string) (string, error) {
			return "", errors.New("connection reset")
		})

		_, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=internal")
	})

	t.Run("leaves host empty for unparseable URLs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newFetcher(&buf, func(ctx context.Context, url string) (string, error) {
			return "", repurpose.Errorf(repurpose.EINVALID, "URL must use http or https")
		})

		_, _ = fetcher.Fetch(context.Background(), "://bad")

		out := buf.String()
		assert.Contains(t, out, "host=\"\"")
		assert.Contains(t, out, "code=invalid")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	fetcher := rslog.NewLoggingFetcher(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
