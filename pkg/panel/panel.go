// Package panel renders a bordered container around multi-line text, with
// an optional title embedded in the top border.
package panel

import (
	"strings"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/style"
)

// titlePadding is the space on each side of an embedded title.
const titlePadding = 2

// Panel frames a block of text. Construct with New; render with Render.
type Panel struct {
	content     string
	title       string
	width       int
	borderStyle style.Style
	box         box.Style
}

// Option configures a Panel.
type Option func(*Panel)

// WithTitle embeds a title in the panel's top border.
func WithTitle(title string) Option {
	return func(p *Panel) { p.title = title }
}

// WithWidth fixes the panel width instead of using the console width.
func WithWidth(width int) Option {
	return func(p *Panel) {
		if width > 0 {
			p.width = width
		}
	}
}

// WithBorderStyle colors the border glyphs.
func WithBorderStyle(s style.Style) Option {
	return func(p *Panel) { p.borderStyle = s }
}

// WithBox selects the border glyph set. Defaults to box.Square.
func WithBox(b box.Style) Option {
	return func(p *Panel) { p.box = b }
}

// New creates a panel around the given content.
func New(content string, opts ...Option) *Panel {
	p := &Panel{
		content: content,
		box:     box.Square,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render draws the panel for the given console. The border downgrades to
// the ASCII box style when the console cannot render rich glyphs; border
// colors are dropped when colors are disabled.
func (p *Panel) Render(c *console.Console) string {
	if c == nil {
		c = console.New()
	}

	width := p.width
	if width == 0 {
		width = c.Width()
	}

	frame := p.box
	if !c.SupportsRichGlyphs() && !frame.ASCIISafe {
		frame = box.ASCII
	}

	colors := c.ColorEnabled()
	borderSeq := p.borderStyle.Sequence(colors)
	resetSeq := ""
	if borderSeq != "" {
		resetSeq = style.Reset().Sequence(colors)
	}

	var lines []string

	// Top border, with the title centered between fill runs. The left
	// run absorbs the odd leftover character.
	header := repeat(frame.Top, width-2)
	if p.title != "" {
		available := width - 2 - 2*titlePadding - runeLen(p.title)
		leftFill := available/2 + available%2
		rightFill := available / 2
		header = repeat(frame.Top, leftFill) +
			strings.Repeat(" ", titlePadding) +
			p.title +
			strings.Repeat(" ", titlePadding) +
			repeat(frame.Top, rightFill)
	}
	lines = append(lines, borderSeq+frame.TopLeft+header+frame.TopRight+resetSeq)

	// Body: each content line left-justified inside the frame.
	for _, line := range strings.Split(p.content, "\n") {
		lines = append(lines,
			borderSeq+frame.MidLeft+resetSeq+" "+pad(line, width-4)+" "+borderSeq+frame.MidRight+resetSeq)
	}

	// Bottom border.
	lines = append(lines, borderSeq+frame.BottomLeft+repeat(frame.Bottom, width-2)+frame.BottomRight+resetSeq)

	return strings.Join(lines, "\n")
}

// RenderTo makes Panel a render.Renderable.
func (p *Panel) RenderTo(c *console.Console) string {
	return p.Render(c)
}

func pad(text string, width int) string {
	if missing := width - runeLen(text); missing > 0 {
		return text + strings.Repeat(" ", missing)
	}
	return text
}

func repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

func runeLen(s string) int {
	return len([]rune(s))
}
