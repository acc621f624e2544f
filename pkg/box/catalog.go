package box

import (
	"sort"

	"github.com/arthur-debert/griddle/pkg/errors"
)

// Preset styles, mirroring the classic box-drawing repertoire. Constructed
// once at init; MustNew panics if a definition regresses.
var (
	ASCII = MustNew(Definition{
		Top:       "+--+",
		Head:      "| ||",
		HeadRow:   "|-+|",
		Mid:       "| ||",
		Row:       "|-+|",
		FootRow:   "|-+|",
		Foot:      "| ||",
		Bottom:    "+--+",
		ASCIISafe: true,
	})

	ASCII2 = MustNew(Definition{
		Top:       "+-++",
		Head:      "| ||",
		HeadRow:   "+-++",
		Mid:       "| ||",
		Row:       "+-++",
		FootRow:   "+-++",
		Foot:      "| ||",
		Bottom:    "+-++",
		ASCIISafe: true,
	})

	ASCIIDoubleHead = MustNew(Definition{
		Top:       "+-++",
		Head:      "| ||",
		HeadRow:   "+=++",
		Mid:       "| ||",
		Row:       "+-++",
		FootRow:   "+-++",
		Foot:      "| ||",
		Bottom:    "+-++",
		ASCIISafe: true,
	})

	Square = MustNew(Definition{
		Top:     "┌─┬┐",
		Head:    "│ ││",
		HeadRow: "├─┼┤",
		Mid:     "│ ││",
		Row:     "├─┼┤",
		FootRow: "├─┼┤",
		Foot:    "│ ││",
		Bottom:  "└─┴┘",
	})

	SquareDoubleHead = MustNew(Definition{
		Top:     "┌─┬┐",
		Head:    "│ ││",
		HeadRow: "╞═╪╡",
		Mid:     "│ ││",
		Row:     "├─┼┤",
		FootRow: "├─┼┤",
		Foot:    "│ ││",
		Bottom:  "└─┴┘",
	})

	Minimal = MustNew(Definition{
		Top:     "  ╷ ",
		Head:    "  │ ",
		HeadRow: "╶─┼╴",
		Mid:     "  │ ",
		Row:     "╶─┼╴",
		FootRow: "╶─┼╴",
		Foot:    "  │ ",
		Bottom:  "  ╵ ",
	})

	MinimalHeavyHead = MustNew(Definition{
		Top:     "  ╷ ",
		Head:    "  │ ",
		HeadRow: "╺━┿╸",
		Mid:     "  │ ",
		Row:     "╶─┼╴",
		FootRow: "╶─┼╴",
		Foot:    "  │ ",
		Bottom:  "  ╵ ",
	})

	MinimalDoubleHead = MustNew(Definition{
		Top:     "  ╷ ",
		Head:    "  │ ",
		HeadRow: " ═╪ ",
		Mid:     "  │ ",
		Row:     " ─┼ ",
		FootRow: " ─┼ ",
		Foot:    "  │ ",
		Bottom:  "  ╵ ",
	})

	Simple = MustNew(Definition{
		Top:     "    ",
		Head:    "    ",
		HeadRow: " ── ",
		Mid:     "    ",
		Row:     "    ",
		FootRow: " ── ",
		Foot:    "    ",
		Bottom:  "    ",
	})

	SimpleHead = MustNew(Definition{
		Top:     "    ",
		Head:    "    ",
		HeadRow: " ── ",
		Mid:     "    ",
		Row:     "    ",
		FootRow: "    ",
		Foot:    "    ",
		Bottom:  "    ",
	})

	SimpleHeavy = MustNew(Definition{
		Top:     "    ",
		Head:    "    ",
		HeadRow: " ━━ ",
		Mid:     "    ",
		Row:     "    ",
		FootRow: " ━━ ",
		Foot:    "    ",
		Bottom:  "    ",
	})

	Horizontals = MustNew(Definition{
		Top:     " ── ",
		Head:    "    ",
		HeadRow: " ── ",
		Mid:     "    ",
		Row:     " ── ",
		FootRow: " ── ",
		Foot:    "    ",
		Bottom:  " ── ",
	})

	Rounded = MustNew(Definition{
		Top:     "╭─┬╮",
		Head:    "│ ││",
		HeadRow: "├─┼┤",
		Mid:     "│ ││",
		Row:     "├─┼┤",
		FootRow: "├─┼┤",
		Foot:    "│ ││",
		Bottom:  "╰─┴╯",
	})

	Heavy = MustNew(Definition{
		Top:     "┏━┳┓",
		Head:    "┃ ┃┃",
		HeadRow: "┣━╋┫",
		Mid:     "┃ ┃┃",
		Row:     "┣━╋┫",
		FootRow: "┣━╋┫",
		Foot:    "┃ ┃┃",
		Bottom:  "┗━┻┛",
	})

	HeavyEdge = MustNew(Definition{
		Top:     "┏━┯┓",
		Head:    "┃ │┃",
		HeadRow: "┠─┼┨",
		Mid:     "┃ │┃",
		Row:     "┠─┼┨",
		FootRow: "┠─┼┨",
		Foot:    "┃ │┃",
		Bottom:  "┗━┷┛",
	})

	HeavyHead = MustNew(Definition{
		Top:     "┏━┳┓",
		Head:    "┃ ┃┃",
		HeadRow: "┡━╇┩",
		Mid:     "│ ││",
		Row:     "├─┼┤",
		FootRow: "├─┼┤",
		Foot:    "│ ││",
		Bottom:  "└─┴┘",
	})

	Double = MustNew(Definition{
		Top:     "╔═╦╗",
		Head:    "║ ║║",
		HeadRow: "╠═╬╣",
		Mid:     "║ ║║",
		Row:     "╠═╬╣",
		FootRow: "╠═╬╣",
		Foot:    "║ ║║",
		Bottom:  "╚═╩╝",
	})

	DoubleEdge = MustNew(Definition{
		Top:     "╔═╤╗",
		Head:    "║ │║",
		HeadRow: "╟─┼╢",
		Mid:     "║ │║",
		Row:     "╟─┼╢",
		FootRow: "╟─┼╢",
		Foot:    "║ │║",
		Bottom:  "╚═╧╝",
	})

	Markdown = MustNew(Definition{
		Top:       "    ",
		Head:      "| ||",
		HeadRow:   "|-||",
		Mid:       "| ||",
		Row:       "|-||",
		FootRow:   "|-||",
		Foot:      "| ||",
		Bottom:    "    ",
		ASCIISafe: true,
	})
)

// catalog maps preset names to styles for lookup from saved configuration.
var catalog = map[string]Style{
	"ascii":               ASCII,
	"ascii2":              ASCII2,
	"ascii-double-head":   ASCIIDoubleHead,
	"square":              Square,
	"square-double-head":  SquareDoubleHead,
	"minimal":             Minimal,
	"minimal-heavy-head":  MinimalHeavyHead,
	"minimal-double-head": MinimalDoubleHead,
	"simple":              Simple,
	"simple-head":         SimpleHead,
	"simple-heavy":        SimpleHeavy,
	"horizontals":         Horizontals,
	"rounded":             Rounded,
	"heavy":               Heavy,
	"heavy-edge":          HeavyEdge,
	"heavy-head":          HeavyHead,
	"double":              Double,
	"double-edge":         DoubleEdge,
	"markdown":            Markdown,
}

// Get looks up a preset style by name.
func Get(name string) (Style, error) {
	style, ok := catalog[name]
	if !ok {
		return Style{}, errors.Newf(errors.ErrBoxNotFound, "unknown box style %q", name).
			WithDetail("name", name)
	}
	return style, nil
}

// Names returns the catalog's preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
