package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/repurpose"
	"github.com/fwojciec/repurpose/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// body is article prose long enough to pass the minimum length.
var body = strings.Repeat("<p>Pricing pages convert better when the cheapest plan anchors the decision rather than hiding below the fold of the page.</p>\n", 5)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Pricing Pages - My Blog</title>
<meta property="og:title" content="Pricing Pages That Convert">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Pricing Pages</h1>
` + body + `
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Equal(t, trafilatura.Source, result.Source)
	})

	t.Run("extracts main content as plain text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Pricing</h1>
` + body + `
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "cheapest plan anchors")
		assert.NotContains(t, result.Text, "<p")
		assert.NotContains(t, result.Text, "\n")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, repurpose.EEXTRACT, repurpose.ErrorCode(err))
	})

	t.Run("rejects short articles", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><head><title>Stub</title></head><body><article><p>Coming soon.</p></article></body></html>`

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(html)

		require.Error(t, err)
		assert.Equal(t, repurpose.EEXTRACT, repurpose.ErrorCode(err))
	})
}
