package table

import "strings"

// wrapCell turns one cell's raw text into its visual lines for a column
// budget of width runes. Paragraphs (explicit newlines) are kept; any
// paragraph longer than the budget is hard-chunked at exactly width runes
// with no regard for word boundaries. An empty paragraph survives as one
// blank line so blank lines inside a cell still occupy a grid row. Every
// line is left-aligned and padded to exactly width runes. Width sources
// (naturalWidths, allocateWidths) guarantee width >= 1.
func wrapCell(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		runes := []rune(paragraph)
		if len(runes) == 0 {
			lines = append(lines, pad("", width))
			continue
		}
		for start := 0; start < len(runes); start += width {
			end := start + width
			if end > len(runes) {
				end = len(runes)
			}
			lines = append(lines, pad(string(runes[start:end]), width))
		}
	}
	return lines
}

// wrapCells wraps every cell of a row and bottom-pads the shorter columns
// with blank lines so the row is rectangular: each column ends up with the
// same visual line count.
func wrapCells(cells []string, widths []int) [][]string {
	wrapped := make([][]string, len(cells))
	tallest := 0
	for i, cell := range cells {
		wrapped[i] = wrapCell(cell, widths[i])
		if len(wrapped[i]) > tallest {
			tallest = len(wrapped[i])
		}
	}

	for i := range wrapped {
		for len(wrapped[i]) < tallest {
			wrapped[i] = append(wrapped[i], pad("", widths[i]))
		}
	}
	return wrapped
}

// pad left-aligns text in a field of width runes.
func pad(text string, width int) string {
	if missing := width - len([]rune(text)); missing > 0 {
		return text + strings.Repeat(" ", missing)
	}
	return text
}
