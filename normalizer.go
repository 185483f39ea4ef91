package repurpose

import (
	"regexp"
	"strings"
)

// Normalizer turns a raw model reply into RepurposedContent.
type Normalizer interface {
	// Normalize locates the JSON object in raw and reshapes it into the
	// reply schema, filling missing fields with empty strings.
	// Returns EMALFORMED only when no JSON object can be located or parsed.
	Normalize(raw string) (*RepurposedContent, error)
}

const codeFence = "```"

// openingFence matches the fence that starts a reply together with its
// optional language tag.
var openingFence = regexp.MustCompile("^```[A-Za-z0-9_+-]*")

// fenceLine matches a fence marker standing on a line of its own.
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+-]*[ \t]*$")

// StripCodeFences removes markdown code fences from a reply that starts
// with one: the opening fence and its language tag, a closing fence at the
// end, and any other fence on a line of its own. Fences inside a line are
// kept. Text that does not start with a fence is returned trimmed but
// otherwise unchanged.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, codeFence) {
		return s
	}
	s = openingFence.ReplaceAllString(s, "")
	s = strings.TrimSuffix(strings.TrimSpace(s), codeFence)
	s = fenceLine.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// SliceJSONObject returns the span from the first "{" to the last "}" of s,
// inclusive. It reports false if no such pair exists.
func SliceJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
