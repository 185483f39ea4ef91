package repurpose

import (
	"strings"
	"unicode/utf8"
)

// Content length bounds, in characters.
const (
	// MinContentChars is the shortest article text worth repurposing.
	MinContentChars = 300

	// MaxContentChars caps the text sent to the model to stay inside its
	// context window.
	MaxContentChars = 12000
)

// CleanText collapses every run of whitespace into a single space, trims
// the result and truncates it to MaxContentChars.
func CleanText(s string) string {
	return TruncateText(strings.Join(strings.Fields(s), " "), MaxContentChars)
}

// TruncateText returns at most n characters of s. Truncating text that is
// already within the bound returns it unchanged.
func TruncateText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return strings.TrimSpace(s[:pos])
		}
		i++
	}
	return s
}

// FinalizeText cleans raw extracted text and enforces the minimum length.
// Returns EEXTRACT when the cleaned text is shorter than MinContentChars.
func FinalizeText(raw string) (string, error) {
	text := CleanText(raw)
	if n := utf8.RuneCountInString(text); n < MinContentChars {
		return "", Errorf(EEXTRACT, "could not find enough article text on the page (found %d characters, need at least %d)", n, MinContentChars)
	}
	return text, nil
}
