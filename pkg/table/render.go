package table

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/console"
)

// RenderOptions controls a single render call.
type RenderOptions struct {
	// Width forces the total rendered width to exactly this many
	// characters, redistributing rounding error across columns. Zero
	// leaves every column at its natural width.
	Width int
}

// Render assembles the bordered grid as a single \n-joined string with no
// trailing newline. The pipeline is fixed: select the box style (with
// ASCII downgrade), compute column widths, wrap the header, wrap each row,
// emit. Rendering is a pure function of the table contents and the console
// snapshot; a table with zero rows still renders its name, top border,
// header block and bottom border.
func (t *Table) Render(c *console.Console, opts RenderOptions) string {
	if c == nil {
		c = console.New()
	}

	style := t.box
	if !c.SupportsRichGlyphs() && !style.ASCIISafe {
		style = box.ASCII
	}

	var widths []int
	if opts.Width > 0 {
		widths = allocateWidths(len(t.columns), opts.Width)
	} else {
		widths = naturalWidths(t.columns, t.rows)
	}
	totalWidth := sum(widths) + borderOverhead(len(t.columns))

	log.Trace().
		Str("table", t.name).
		Int("columns", len(t.columns)).
		Int("rows", len(t.rows)).
		Int("width", totalWidth).
		Msg("rendering table")

	var lines []string

	// Name, centered over the full table width.
	lines = append(lines, center(t.name, totalWidth))

	// Top border.
	lines = append(lines, fillLine(widths,
		style.TopLeft, style.Top, style.TopDivider, style.TopRight))

	// Header block.
	lines = append(lines, contentLines(wrapCells(t.columns, widths),
		style.HeadLeft, style.HeadVertical, style.HeadRight)...)

	// Header separator.
	lines = append(lines, fillLine(widths,
		style.HeadRowLeft, style.HeadRowHorizontal, style.HeadRowCross, style.HeadRowRight))

	// Data rows, with a separator between rows but never after the last.
	for i, row := range t.rows {
		lines = append(lines, contentLines(wrapCells(row, widths),
			style.MidLeft, style.MidVertical, style.MidRight)...)

		if i < len(t.rows)-1 {
			lines = append(lines, fillLine(widths,
				style.RowLeft, style.RowHorizontal, style.RowCross, style.RowRight))
		}
	}

	// Bottom border.
	lines = append(lines, fillLine(widths,
		style.BottomLeft, style.Bottom, style.BottomDivider, style.BottomRight))

	return strings.Join(lines, "\n")
}

// RenderTo renders with default options, sized to the console.
func (t *Table) RenderTo(c *console.Console) string {
	return t.Render(c, RenderOptions{})
}

// fillLine builds a horizontal border line: each column's fill glyph
// repeated width+2 times (the +2 covers the cell padding spaces), joined
// with the zone's cross glyph and framed by the edge glyphs.
func fillLine(widths []int, left, fill, cross, right string) string {
	segments := make([]string, len(widths))
	for i, width := range widths {
		segments[i] = repeat(fill, width+2)
	}
	return left + strings.Join(segments, cross) + right
}

// contentLines frames the wrapped cells of one logical row. Each visual
// line is left + " " + cells + " " + right, with " " + vertical + " "
// between columns. wrapCells guarantees rectangularity, so every column
// has the same line count.
func contentLines(wrapped [][]string, left, vertical, right string) []string {
	if len(wrapped) == 0 {
		return nil
	}

	height := len(wrapped[0])
	lines := make([]string, 0, height)
	for visual := 0; visual < height; visual++ {
		cells := make([]string, len(wrapped))
		for col := range wrapped {
			cells[col] = wrapped[col][visual]
		}
		lines = append(lines, left+" "+strings.Join(cells, " "+vertical+" ")+" "+right)
	}
	return lines
}

// center pads text on both sides to the given rune width, extra space on
// the right.
func center(text string, width int) string {
	missing := width - len([]rune(text))
	if missing <= 0 {
		return text
	}
	leftPad := missing / 2
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", missing-leftPad)
}

// repeat is strings.Repeat with a floor at zero, so degenerate widths
// cannot panic.
func repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}
