package repurpose

import "strings"

// Tone selects the writing style requested from the model.
type Tone string

// Tone constants. The set is closed; anything else resolves to ToneProfessional.
const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneViral        Tone = "viral"
	ToneEducational  Tone = "educational"
	ToneWitty        Tone = "witty"
)

// DefaultTone is used when no tone or an unknown tone is requested.
const DefaultTone = ToneProfessional

var toneDirectives = map[Tone]string{
	ToneProfessional: "Write in a polished, authoritative voice suited to executives and industry peers.",
	ToneCasual:       "Write in a relaxed, conversational voice, as if explaining the idea to a friend over coffee.",
	ToneViral:        "Write for maximum shareability with bold hooks and punchy lines that spark curiosity.",
	ToneEducational:  "Write in a clear, instructive voice that teaches one concrete takeaway at a time.",
	ToneWitty:        "Write with sharp, clever humor while keeping the core insight front and center.",
}

// Tones returns every supported tone in a stable order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneViral, ToneEducational, ToneWitty}
}

// ParseTone resolves s to a supported tone, ignoring case and surrounding
// whitespace. Empty or unknown values resolve to DefaultTone.
func ParseTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneDirectives[t]; ok {
		return t
	}
	return DefaultTone
}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	_, ok := toneDirectives[t]
	return ok
}

// Directive returns the one-sentence style instruction for the tone.
func (t Tone) Directive() string {
	if d, ok := toneDirectives[t]; ok {
		return d
	}
	return toneDirectives[DefaultTone]
}
