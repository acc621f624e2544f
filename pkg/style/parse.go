package style

import (
	"strings"

	"github.com/arthur-debert/griddle/pkg/errors"
)

// SGR code tables. Bright variants use a ":bright" suffix on the color name.
var effects = map[string]string{
	"reset":         "0",
	"bold":          "1",
	"dim":           "2",
	"italic":        "3",
	"underline":     "4",
	"blinking":      "5",
	"reverse":       "7",
	"invisible":     "8",
	"strikethrough": "9",

	// Common aliases
	"dimmed":     "2",
	"underlined": "4",
	"invert":     "7",
	"inverted":   "7",
	"hidden":     "8",
}

var foregrounds = map[string]string{
	"black":   "30",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
	"white":   "37",
	"reset":   "39",

	"black:bright":   "90",
	"red:bright":     "91",
	"green:bright":   "92",
	"yellow:bright":  "93",
	"blue:bright":    "94",
	"magenta:bright": "95",
	"cyan:bright":    "96",
	"white:bright":   "97",
	"reset:bright":   "99",
}

var backgrounds = map[string]string{
	"black":   "40",
	"red":     "41",
	"green":   "42",
	"yellow":  "43",
	"blue":    "44",
	"magenta": "45",
	"cyan":    "46",
	"white":   "47",
	"reset":   "49",

	"black:bright":   "100",
	"red:bright":     "101",
	"green:bright":   "102",
	"yellow:bright":  "103",
	"blue:bright":    "104",
	"magenta:bright": "105",
	"cyan:bright":    "106",
	"white:bright":   "107",
	"reset:bright":   "109",
}

// New builds a Style from named attributes. Empty names leave the field
// unset; unknown names fail with STYLE_UNKNOWN_NAME.
func New(effect, foreground, background string) (Style, error) {
	var s Style

	if effect != "" {
		code, ok := effects[effect]
		if !ok {
			return Style{}, errors.Newf(errors.ErrStyleUnknown, "invalid effect: %s", effect)
		}
		s.Effect = code
	}

	if foreground != "" {
		code, ok := foregrounds[foreground]
		if !ok {
			return Style{}, errors.Newf(errors.ErrStyleUnknown, "invalid foreground color: %s", foreground)
		}
		s.Foreground = code
	}

	if background != "" {
		code, ok := backgrounds[background]
		if !ok {
			return Style{}, errors.Newf(errors.ErrStyleUnknown, "invalid background color: %s", background)
		}
		s.Background = code
	}

	return s, nil
}

// Parse reads a style specification of the form
//
//	[effect] [foreground] [on background]
//
// for example "bold", "yellow", "on red", "green on red" or
// "bold white on red". An empty string parses to the zero Style.
func Parse(text string) (Style, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Style{}, nil
	}

	fields := strings.Fields(text)

	// Split at the "on" keyword; everything after it is the background.
	var fg, bg []string
	fg = fields
	for i, field := range fields {
		if field == "on" {
			fg = fields[:i]
			bg = fields[i+1:]
			break
		}
	}

	if len(fg) > 2 || (bg != nil && len(bg) != 1) {
		return Style{}, errors.Newf(errors.ErrStyleFormat, "invalid style format: %s", text)
	}

	var parsed Style

	switch len(fg) {
	case 0:
	case 1:
		// A single token is either an effect or a foreground color.
		if code, ok := effects[fg[0]]; ok {
			parsed.Effect = code
		} else if code, ok := foregrounds[fg[0]]; ok {
			parsed.Foreground = code
		} else {
			return Style{}, errors.Newf(errors.ErrStyleUnknown,
				"invalid effect or foreground color: %s", fg[0])
		}
	case 2:
		withFg, err := New(fg[0], fg[1], "")
		if err != nil {
			return Style{}, err
		}
		parsed = withFg
	}

	if len(bg) == 1 {
		withBg, err := New("", "", bg[0])
		if err != nil {
			return Style{}, err
		}
		parsed = Combine(parsed, withBg)
	}

	return parsed, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// fixed specifications in package-level variables.
func MustParse(text string) Style {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}
