// Package render provides the common entry point for printing mixed
// renderable values (tables, panels, rules, styled text) to a console.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/griddle/pkg/console"
	"github.com/arthur-debert/griddle/pkg/style"
)

// Renderable is implemented by every component that can draw itself for a
// console: Table, Panel, Rule and StyledText.
type Renderable interface {
	RenderTo(c *console.Console) string
}

// StyledText is a plain string with an attached style. The style is
// dropped when the console has colors disabled.
type StyledText struct {
	Text  string
	Style style.Style
}

// RenderTo implements Renderable.
func (s StyledText) RenderTo(c *console.Console) string {
	if c == nil {
		c = console.New()
	}
	if !c.ColorEnabled() || s.Style.IsZero() {
		return s.Text
	}
	return s.Style.Wrap(s.Text)
}

// Sprint renders each value for the console and joins them with spaces.
// Renderables draw themselves; strings pass through; anything else is
// formatted with %v.
func Sprint(c *console.Console, values ...interface{}) string {
	parts := make([]string, len(values))
	for i, value := range values {
		switch v := value.(type) {
		case Renderable:
			parts[i] = v.RenderTo(c)
		case string:
			parts[i] = v
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return strings.Join(parts, " ")
}

// Fprint renders the values for the console and writes them to w with a
// trailing newline.
func Fprint(w io.Writer, c *console.Console, values ...interface{}) error {
	_, err := fmt.Fprintln(w, Sprint(c, values...))
	return err
}
