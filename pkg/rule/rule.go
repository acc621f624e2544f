// Package rule renders horizontal divider lines, optionally titled.
package rule

import (
	"fmt"
	"html"
	"strings"

	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/style"
)

// titlePadding is the space on each side of an embedded title.
const titlePadding = 2

// Rule is a horizontal divider. The line is built by repeating a character
// unit, which may be longer than one character (for example "-~=").
type Rule struct {
	title      string
	characters string
	width      int
	lineStyle  style.Style
}

// Option configures a Rule.
type Option func(*Rule)

// WithTitle centers a title inside the rule.
func WithTitle(title string) Option {
	return func(r *Rule) { r.title = title }
}

// WithCharacters sets the repeated unit. Defaults to "─".
func WithCharacters(characters string) Option {
	return func(r *Rule) {
		if characters != "" {
			r.characters = characters
		}
	}
}

// WithWidth fixes the rule width instead of using the console width.
func WithWidth(width int) Option {
	return func(r *Rule) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithStyle colors the whole rule.
func WithStyle(s style.Style) Option {
	return func(r *Rule) { r.lineStyle = s }
}

// New creates a rule.
func New(opts ...Option) *Rule {
	r := &Rule{characters: "─"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the rule for the given console. Non-ASCII character units
// downgrade to "-" when the console cannot render rich glyphs.
func (r *Rule) Render(c *console.Console) string {
	if c == nil {
		c = console.New()
	}

	width := r.width
	if width == 0 {
		width = c.Width()
	}

	characters := r.characters
	if !c.SupportsRichGlyphs() && !isASCII(characters) {
		characters = "-"
	}

	unit := runeLen(characters)
	repeats := width / unit

	line := strings.Repeat(characters, repeats)
	if r.title != "" {
		side := (repeats - runeLen(r.title) - 2*titlePadding) / 2
		if side < 0 {
			side = 0
		}
		fill := strings.Repeat(characters, side)
		line = fill + strings.Repeat(" ", titlePadding) + r.title + strings.Repeat(" ", titlePadding) + fill
	}

	colors := c.ColorEnabled()
	if seq := r.lineStyle.Sequence(colors); seq != "" {
		return seq + line + style.Reset().Sequence(colors)
	}
	return line
}

// RenderTo makes Rule a render.Renderable.
func (r *Rule) RenderTo(c *console.Console) string {
	return r.Render(c)
}

// ToHTML renders the rule as a borderless single-row table wrapping <hr>
// elements, which survives mail clients better than a styled <hr> alone.
func (r *Rule) ToHTML() string {
	if r.title == "" {
		return `<table width="100%" border="0" cellspacing="0" cellpadding="0"><tr><td><hr /></td></tr></table>`
	}
	return fmt.Sprintf(
		`<table width="100%%" border="0" cellspacing="0" cellpadding="0"><tr><td><hr /></td>`+
			`<td width="1px" style="padding: 0 10px; white-space: nowrap;">%s</td><td><hr /></td></tr></table>`,
		html.EscapeString(r.title))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 0x7F {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}
