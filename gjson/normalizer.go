// Package gjson implements repurpose.Normalizer on top of tidwall/gjson.
package gjson

import (
	"strings"

	"github.com/fwojciec/repurpose"
	"github.com/tidwall/gjson"
)

// Ensure Normalizer implements repurpose.Normalizer.
var _ repurpose.Normalizer = (*Normalizer)(nil)

// Normalizer reshapes loosely-structured model replies into
// repurpose.RepurposedContent.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize implements repurpose.Normalizer.
func (n *Normalizer) Normalize(raw string) (*repurpose.RepurposedContent, error) {
	text := repurpose.StripCodeFences(raw)

	obj, ok := repurpose.SliceJSONObject(text)
	if !ok {
		return nil, repurpose.Errorf(repurpose.EMALFORMED, "the model reply did not contain a JSON object")
	}
	if !gjson.Valid(obj) {
		return nil, repurpose.Errorf(repurpose.EMALFORMED, "the model reply could not be parsed as JSON")
	}

	return reshape(gjson.Parse(obj)), nil
}

func reshape(root gjson.Result) *repurpose.RepurposedContent {
	var content repurpose.RepurposedContent
	top := members(root)

	for _, section := range repurpose.Schema {
		value := lookup(top, section.Key, section.Aliases)

		switch {
		case value.IsObject():
			fields := members(value)
			for _, field := range section.Fields {
				*content.Field(section.Key, field.Key) = render(lookup(fields, field.Key, field.Aliases))
			}
		case value.Type == gjson.String && section.Scalar != "":
			*content.Field(section.Key, section.Scalar) = value.Str
		}
	}

	return &content
}

type member struct {
	key   string
	value gjson.Result
}

// members lists the key/value pairs of an object in document order.
func members(obj gjson.Result) []member {
	var out []member
	obj.ForEach(func(key, value gjson.Result) bool {
		out = append(out, member{key: key.String(), value: value})
		return true
	})
	return out
}

// lookup finds a value by canonical key, then by each alias, then by a
// case-insensitive match against any of them. Matches that are null or an
// empty string are passed over in favour of a later match; the first of them
// is returned only when nothing better exists. The zero Result is returned
// when nothing matches.
func lookup(ms []member, key string, aliases []string) gjson.Result {
	names := append([]string{key}, aliases...)
	var fallback gjson.Result
	match := func(v gjson.Result) bool {
		if !blank(v) {
			return true
		}
		if !fallback.Exists() {
			fallback = v
		}
		return false
	}
	for _, name := range names {
		for _, m := range ms {
			if m.key == name && match(m.value) {
				return m.value
			}
		}
	}
	for _, name := range names {
		for _, m := range ms {
			if strings.EqualFold(strings.TrimSpace(m.key), name) && match(m.value) {
				return m.value
			}
		}
	}
	return fallback
}

// blank reports whether v carries no usable value.
func blank(v gjson.Result) bool {
	return v.Type == gjson.Null || (v.Type == gjson.String && v.Str == "")
}

// render converts any JSON value into a display string.
func render(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw
	case gjson.JSON:
		if v.IsArray() {
			var parts []string
			for _, el := range v.Array() {
				parts = append(parts, render(el))
			}
			return strings.Join(parts, "\n")
		}
		var parts []string
		for _, m := range members(v) {
			parts = append(parts, strings.ToUpper(m.key)+": "+render(m.value))
		}
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}
