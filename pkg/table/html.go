package table

import (
	"fmt"
	"html"
	"strings"
)

// HTMLOptions holds the attributes emitted on the <table> element.
// BackgroundColor, Width and Height are omitted when empty.
type HTMLOptions struct {
	Align           string
	BackgroundColor string
	BorderSize      int
	CellPadding     int
	CellSpacing     int
	Width           string
	Height          string
}

// DefaultHTMLOptions matches the historical output: a centered table with
// a 1-pixel border and no cell padding or spacing.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Align:      "center",
		BorderSize: 1,
	}
}

// ToHTML serializes the table as an HTML table with the name as caption.
// Cell text is entity-escaped; carriage returns are stripped and newlines
// become <br> elements.
func (t *Table) ToHTML(opts HTMLOptions) string {
	var out []string

	out = append(out, fmt.Sprintf("<table%s>", htmlAttributes(opts)))
	out = append(out, fmt.Sprintf("<caption>%s</caption>", htmlEscape(t.name)))

	out = append(out, "<thead>")
	out = append(out, htmlRow(t.columns, "th"))
	out = append(out, "</thead>")

	out = append(out, "<tbody>")
	for _, row := range t.rows {
		out = append(out, htmlRow(row, "td"))
	}
	out = append(out, "</tbody>")

	out = append(out, "</table>")
	return strings.Join(out, "\n")
}

func htmlAttributes(opts HTMLOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, " cellpadding=%q cellspacing=%q", fmt.Sprint(opts.CellPadding), fmt.Sprint(opts.CellSpacing))
	if opts.Align != "" {
		fmt.Fprintf(&b, " align=%q", opts.Align)
	}
	fmt.Fprintf(&b, " border=%q", fmt.Sprint(opts.BorderSize))
	if opts.BackgroundColor != "" {
		fmt.Fprintf(&b, " bgcolor=%q", opts.BackgroundColor)
	}
	if opts.Width != "" {
		fmt.Fprintf(&b, " width=%q", opts.Width)
	}
	if opts.Height != "" {
		fmt.Fprintf(&b, " height=%q", opts.Height)
	}
	return b.String()
}

func htmlRow(cells []string, tag string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, cell := range cells {
		fmt.Fprintf(&b, "<%s>%s</%s>", tag, htmlEscape(cell), tag)
	}
	b.WriteString("</tr>")
	return b.String()
}

// htmlEscape entity-escapes text and converts physical line structure to
// HTML: carriage returns vanish, newlines become <br>.
func htmlEscape(text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\r", "")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
