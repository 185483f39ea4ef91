package repurpose

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatContent renders content as plain text for terminal display.
// Sections and fields follow Schema order; empty fields are shown as
// "(empty)" so a missing piece is visible. Fields over their advisory
// limit are marked with their length.
func FormatContent(c *RepurposedContent) string {
	if c == nil {
		return ""
	}

	parts := make([]string, 0, len(Schema))
	for _, section := range Schema {
		var sb strings.Builder
		sb.WriteString("## " + section.Label)
		for _, field := range section.Fields {
			value := *c.Field(section.Key, field.Key)
			header := field.Label
			if n := utf8.RuneCountInString(value); field.Limit > 0 && n > field.Limit {
				header += fmt.Sprintf(" (%d/%d characters)", n, field.Limit)
			}
			if strings.TrimSpace(value) == "" {
				value = "(empty)"
			}
			sb.WriteString("\n\n### " + header + "\n" + value)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
