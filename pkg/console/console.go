// Package console probes the capabilities of the terminal the output is
// attached to: its size, whether it is interactive, and whether it can
// render Unicode line-drawing glyphs and ANSI colors.
package console

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Fallback dimensions when size detection fails entirely. The wide default
// suits log-style tabular output better than the VT100's 80 columns.
const (
	DefaultWidth  = 132
	DefaultHeight = 24
)

// Console is a snapshot-style view of the output terminal. The zero value
// is not usable; construct with New.
//
// Width, height and color enablement are explicit configuration when set,
// detection results otherwise. Renderers take a *Console per call, so a
// resized terminal is picked up on the next render.
type Console struct {
	output *os.File

	fixedWidth  int
	fixedHeight int

	// forceRich skips terminal detection for rich-glyph support.
	// Explicit configuration for tests and for callers that pipe
	// Unicode output on purpose.
	forceRich bool

	// disableColor turns every style sequence into an empty string.
	disableColor bool
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets the file the console writes to. Defaults to os.Stdout.
func WithOutput(f *os.File) Option {
	return func(c *Console) { c.output = f }
}

// WithWidth fixes the console width instead of detecting it.
func WithWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.fixedWidth = width
		}
	}
}

// WithHeight fixes the console height instead of detecting it.
func WithHeight(height int) Option {
	return func(c *Console) {
		if height > 0 {
			c.fixedHeight = height
		}
	}
}

// WithForceRich marks the console as rich-glyph capable regardless of
// terminal detection.
func WithForceRich() Option {
	return func(c *Console) { c.forceRich = true }
}

// WithoutColor disables ANSI color output.
func WithoutColor() Option {
	return func(c *Console) { c.disableColor = true }
}

// New builds a Console for the given options.
func New(opts ...Option) *Console {
	c := &Console{output: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the detected terminal dimensions, with explicit width and
// height overrides applied. Falls back to 132x24 when detection fails.
func (c *Console) Size() (width, height int) {
	width, height = DefaultWidth, DefaultHeight

	if cols, lines, err := term.GetSize(int(c.output.Fd())); err == nil {
		width, height = cols, lines
	} else {
		log.Trace().Err(err).Msg("terminal size detection failed, using defaults")
	}

	if c.fixedWidth > 0 {
		width = c.fixedWidth
	}
	if c.fixedHeight > 0 {
		height = c.fixedHeight
	}
	return width, height
}

// Width returns the target width for rendering.
func (c *Console) Width() int {
	width, _ := c.Size()
	return width
}

// Height returns the terminal height.
func (c *Console) Height() int {
	_, height := c.Size()
	return height
}

// IsTerminal reports whether the output is attached to an interactive
// terminal. Setting FORCE_COLOR to any value counts as a terminal.
func (c *Console) IsTerminal() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	fd := c.output.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsDumbTerminal reports whether the terminal self-identifies as unable to
// interpret escape sequences.
func (c *Console) IsDumbTerminal() bool {
	switch strings.ToLower(os.Getenv("TERM")) {
	case "dumb", "unknown":
		return c.IsTerminal()
	}
	return false
}

// SupportsRichGlyphs reports whether Unicode line-drawing glyphs can be
// rendered. False when the output is not a terminal, the terminal is dumb,
// or the terminal only supports plain ASCII output. Renderers downgrade to
// an ASCII box style when this is false.
func (c *Console) SupportsRichGlyphs() bool {
	if c.forceRich {
		return true
	}
	if !c.IsTerminal() || c.IsDumbTerminal() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// ColorEnabled reports whether style sequences should be emitted. Honors
// the NO_COLOR convention and the explicit WithoutColor option.
func (c *Console) ColorEnabled() bool {
	if c.disableColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.IsTerminal() && !c.IsDumbTerminal()
}
