package repurpose

// ExtractResult holds the readable text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, if one was found.
	Title string

	// Text is the cleaned article text. Whitespace is collapsed and the
	// length is between MinContentChars and MaxContentChars.
	Text string

	// Source names the strategy or selector that produced Text.
	Source string
}

// Extractor isolates the main article text from an HTML page, dropping
// navigation, footers and other boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the cleaned article text.
	// Returns EEXTRACT if the document cannot be parsed or yields fewer
	// than MinContentChars characters. Never returns partial results.
	Extract(html string) (*ExtractResult, error)
}
