package repurpose

import (
	"fmt"
	"strings"
)

// Prompt is the two-part instruction sent to the language model.
type Prompt struct {
	System string
	User   string
}

const systemPersona = `You are a senior growth marketer writing for founders, CMOs, and marketing leaders.

Your writing style:
- Sharp
- Insightful
- Non-generic
- No robotic phrasing
- No filler like "In today's fast-paced world"
- Use strong hooks
- Sound like a real LinkedIn creator`

const outputContract = `You must return STRICTLY valid JSON.
Return only the JSON object.
Do NOT wrap it in markdown code fences.
Do NOT include explanation or commentary.`

// BuildPrompt builds the system and user instructions for repurposing
// content in the given tone.
func BuildPrompt(content string, tone Tone) Prompt {
	return Prompt{
		System: BuildSystemPrompt(tone),
		User:   BuildUserPrompt(content),
	}
}

// BuildSystemPrompt returns the persona, style and output-format rules.
func BuildSystemPrompt(tone Tone) string {
	var sb strings.Builder
	sb.WriteString(systemPersona)
	sb.WriteString("\n\nTone: ")
	sb.WriteString(tone.Directive())
	sb.WriteString("\n\n")
	sb.WriteString(outputContract)
	return sb.String()
}

// BuildUserPrompt embeds the article text followed by the reply schema.
func BuildUserPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("Here is the blog content:\n\n")
	sb.WriteString(content)
	sb.WriteString("\n\nRepurpose it into the following structured JSON format:\n\n")
	sb.WriteString(SchemaDescription())
	return sb.String()
}

// SchemaDescription renders Schema as a JSON skeleton whose values are the
// per-field instructions.
func SchemaDescription() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, section := range Schema {
		fmt.Fprintf(&sb, "  %q: {\n", section.Key)
		for j, field := range section.Fields {
			fmt.Fprintf(&sb, "    %q: %q", field.Key, field.Hint)
			if j < len(section.Fields)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("  }")
		if i < len(Schema)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
