package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/griddle/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Style
	}{
		{"red", Style{Foreground: "31"}},
		{"bold", Style{Effect: "1"}},
		{"bold red", Style{Effect: "1", Foreground: "31"}},
		{"on yellow", Style{Background: "43"}},
		{"green on red", Style{Foreground: "32", Background: "41"}},
		{"italic green on red", Style{Effect: "3", Foreground: "32", Background: "41"}},
		{"white:bright on black", Style{Foreground: "97", Background: "40"}},
		{"", Style{}},
		{"  bold  ", Style{Effect: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	unknown := []string{
		"CustomColor",
		"CustomColor on CustomColor",
		"CustomColor on red",
	}
	for _, input := range unknown {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrStyleUnknown), "got %v", err)
		})
	}

	malformed := []string{
		"bold white red on blue",
		"red on blue green",
		"bold on",
		"red on blue on green",
	}
	for _, input := range malformed {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrStyleFormat), "got %v", err)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bold", "\x1b[1m"},
		{"yellow", "\x1b[33m"},
		{"on red", "\x1b[41m"},
		{"green on red", "\x1b[32;41m"},
		{"bold white on red", "\x1b[1;37;41m"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.input).String())
		})
	}

	assert.Equal(t, "", Style{}.String())
}

func TestCombine(t *testing.T) {
	bold := MustParse("bold")
	red := MustParse("red")
	onBlue := MustParse("on blue")

	assert.Equal(t, Style{Effect: "1", Foreground: "31"}, Combine(bold, red))
	assert.Equal(t, Style{Effect: "1", Foreground: "31", Background: "44"},
		Combine(Combine(bold, red), onBlue))

	// Later non-empty field wins.
	green := MustParse("green")
	assert.Equal(t, green.Foreground, Combine(red, green).Foreground)

	// Zero style is the identity on both sides.
	assert.Equal(t, red, Combine(red, Style{}))
	assert.Equal(t, red, Combine(Style{}, red))
}

func TestSequence(t *testing.T) {
	red := MustParse("red")
	assert.Equal(t, "\x1b[31m", red.Sequence(true))
	assert.Equal(t, "", red.Sequence(false))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "\x1b[1mhi\x1b[0m", MustParse("bold").Wrap("hi"))
	assert.Equal(t, "hi", Style{}.Wrap("hi"))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("NotAColor") })
}
