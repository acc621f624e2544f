// Package box defines the line-drawing glyph sets used to draw table and
// panel borders.
package box

import (
	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/griddle/pkg/errors"
)

// Definition holds the raw glyph strings for the eight horizontal zones of
// a box. Each zone is a 4-glyph string: left edge, horizontal fill,
// divider/cross, right edge.
//
//	┌─┬┐ Top
//	│ ││ Head
//	├─┼┤ HeadRow
//	│ ││ Mid
//	├─┼┤ Row
//	├─┼┤ FootRow
//	│ ││ Foot
//	└─┴┘ Bottom
type Definition struct {
	Top     string
	Head    string
	HeadRow string
	Mid     string
	Row     string
	FootRow string
	Foot    string
	Bottom  string

	// ASCIISafe marks the definition as using 7-bit characters only.
	ASCIISafe bool
}

// Style is an immutable set of border-drawing glyphs. Construct via New or
// pick a preset from the catalog.
type Style struct {
	TopLeft    string
	Top        string
	TopDivider string
	TopRight   string

	HeadLeft     string
	HeadVertical string
	HeadRight    string

	HeadRowLeft       string
	HeadRowHorizontal string
	HeadRowCross      string
	HeadRowRight      string

	MidLeft     string
	MidVertical string
	MidRight    string

	RowLeft       string
	RowHorizontal string
	RowCross      string
	RowRight      string

	FootRowLeft       string
	FootRowHorizontal string
	FootRowCross      string
	FootRowRight      string

	FootLeft     string
	FootVertical string
	FootRight    string

	BottomLeft    string
	Bottom        string
	BottomDivider string
	BottomRight   string

	ASCIISafe bool
}

// New validates a definition and builds a Style from it. Every zone must
// decompose into exactly 4 glyphs, each occupying exactly one display
// column. ASCII-safe definitions must use 7-bit characters only.
func New(def Definition) (Style, error) {
	zones := []struct {
		name  string
		value string
	}{
		{"top", def.Top},
		{"head", def.Head},
		{"head_row", def.HeadRow},
		{"mid", def.Mid},
		{"row", def.Row},
		{"foot_row", def.FootRow},
		{"foot", def.Foot},
		{"bottom", def.Bottom},
	}

	split := make(map[string][4]string, len(zones))
	for _, zone := range zones {
		glyphs, err := splitZone(zone.name, zone.value, def.ASCIISafe)
		if err != nil {
			return Style{}, err
		}
		split[zone.name] = glyphs
	}

	top := split["top"]
	head := split["head"]
	headRow := split["head_row"]
	mid := split["mid"]
	row := split["row"]
	footRow := split["foot_row"]
	foot := split["foot"]
	bottom := split["bottom"]

	return Style{
		TopLeft:    top[0],
		Top:        top[1],
		TopDivider: top[2],
		TopRight:   top[3],

		HeadLeft:     head[0],
		HeadVertical: head[2],
		HeadRight:    head[3],

		HeadRowLeft:       headRow[0],
		HeadRowHorizontal: headRow[1],
		HeadRowCross:      headRow[2],
		HeadRowRight:      headRow[3],

		MidLeft:     mid[0],
		MidVertical: mid[2],
		MidRight:    mid[3],

		RowLeft:       row[0],
		RowHorizontal: row[1],
		RowCross:      row[2],
		RowRight:      row[3],

		FootRowLeft:       footRow[0],
		FootRowHorizontal: footRow[1],
		FootRowCross:      footRow[2],
		FootRowRight:      footRow[3],

		FootLeft:     foot[0],
		FootVertical: foot[2],
		FootRight:    foot[3],

		BottomLeft:    bottom[0],
		Bottom:        bottom[1],
		BottomDivider: bottom[2],
		BottomRight:   bottom[3],

		ASCIISafe: def.ASCIISafe,
	}, nil
}

// MustNew is like New but panics on a malformed definition. Intended for
// the package-level preset catalog only.
func MustNew(def Definition) Style {
	style, err := New(def)
	if err != nil {
		panic(err)
	}
	return style
}

// splitZone decomposes a zone string into its 4 glyphs. Byte length and
// rune count disagree for the Unicode line-drawing characters, so glyphs
// are counted by rune and measured by display width.
func splitZone(name, value string, asciiSafe bool) ([4]string, error) {
	var glyphs [4]string

	runes := []rune(value)
	if len(runes) != 4 {
		return glyphs, errors.Newf(errors.ErrBoxInvalid,
			"zone %q must have exactly 4 glyphs, found %d", name, len(runes)).
			WithDetail("zone", name).
			WithDetail("value", value)
	}

	for i, r := range runes {
		if runewidth.RuneWidth(r) != 1 {
			return glyphs, errors.Newf(errors.ErrBoxInvalid,
				"zone %q glyph %q is not one display column wide", name, string(r)).
				WithDetail("zone", name)
		}
		if asciiSafe && r > 0x7F {
			return glyphs, errors.Newf(errors.ErrBoxInvalid,
				"zone %q glyph %q is not 7-bit but the style is marked ASCII-safe", name, string(r)).
				WithDetail("zone", name)
		}
		glyphs[i] = string(r)
	}

	return glyphs, nil
}
