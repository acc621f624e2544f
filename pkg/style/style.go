// Package style implements the ANSI text style value used by the rendering
// components. A Style holds up to three SGR codes (effect, foreground,
// background); the zero value renders to nothing.
package style

// Style is an immutable triple of optional SGR codes. Combine two styles
// with Combine; the zero Style is the identity.
type Style struct {
	Effect     string
	Foreground string
	Background string
}

// Reset returns the style that clears all attributes.
func Reset() Style {
	return Style{Effect: effects["reset"]}
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool {
	return s.Effect == "" && s.Foreground == "" && s.Background == ""
}

// String renders the style as an ANSI escape sequence, or "" for the zero
// value.
func (s Style) String() string {
	if s.IsZero() {
		return ""
	}

	seq := "\x1b["
	first := true
	for _, code := range []string{s.Effect, s.Foreground, s.Background} {
		if code == "" {
			continue
		}
		if !first {
			seq += ";"
		}
		seq += code
		first = false
	}
	return seq + "m"
}

// Sequence renders the style's escape sequence when enabled is true and ""
// otherwise. Rendering components thread the console's color enablement
// through this instead of consulting process-wide state.
func (s Style) Sequence(enabled bool) string {
	if !enabled {
		return ""
	}
	return s.String()
}

// Wrap surrounds text with the style's escape sequence and a reset. The
// zero style returns the text unchanged.
func (s Style) Wrap(text string) string {
	if s.IsZero() {
		return text
	}
	return s.String() + text + Reset().String()
}

// Combine merges two styles. For each field the later non-empty value
// wins; the zero Style is the identity of this operation.
func Combine(a, b Style) Style {
	merged := a
	if b.Effect != "" {
		merged.Effect = b.Effect
	}
	if b.Foreground != "" {
		merged.Foreground = b.Foreground
	}
	if b.Background != "" {
		merged.Background = b.Background
	}
	return merged
}
