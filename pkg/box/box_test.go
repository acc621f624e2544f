package box

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/griddle/pkg/errors"
)

func TestNew(t *testing.T) {
	style, err := New(Definition{
		Top:     "┌─┬┐",
		Head:    "│ ││",
		HeadRow: "├─┼┤",
		Mid:     "│ ││",
		Row:     "├─┼┤",
		FootRow: "├─┼┤",
		Foot:    "│ ││",
		Bottom:  "└─┴┘",
	})
	require.NoError(t, err)

	assert.Equal(t, "┌", style.TopLeft)
	assert.Equal(t, "─", style.Top)
	assert.Equal(t, "┬", style.TopDivider)
	assert.Equal(t, "┐", style.TopRight)
	assert.Equal(t, "│", style.HeadVertical)
	assert.Equal(t, "┼", style.RowCross)
	assert.Equal(t, "┘", style.BottomRight)
	assert.False(t, style.ASCIISafe)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{
			name: "too few glyphs",
			def: Definition{
				Top:     "┌─┐",
				Head:    "│ ││",
				HeadRow: "├─┼┤",
				Mid:     "│ ││",
				Row:     "├─┼┤",
				FootRow: "├─┼┤",
				Foot:    "│ ││",
				Bottom:  "└─┴┘",
			},
		},
		{
			name: "too many glyphs",
			def: Definition{
				Top:     "┌──┬┐",
				Head:    "│ ││",
				HeadRow: "├─┼┤",
				Mid:     "│ ││",
				Row:     "├─┼┤",
				FootRow: "├─┼┤",
				Foot:    "│ ││",
				Bottom:  "└─┴┘",
			},
		},
		{
			name: "double-width glyph",
			def: Definition{
				Top:     "个─┬┐",
				Head:    "│ ││",
				HeadRow: "├─┼┤",
				Mid:     "│ ││",
				Row:     "├─┼┤",
				FootRow: "├─┼┤",
				Foot:    "│ ││",
				Bottom:  "└─┴┘",
			},
		},
		{
			name: "unicode glyph in ascii-safe style",
			def: Definition{
				Top:       "┌─┬┐",
				Head:      "| ||",
				HeadRow:   "|-+|",
				Mid:       "| ||",
				Row:       "|-+|",
				FootRow:   "|-+|",
				Foot:      "| ||",
				Bottom:    "+--+",
				ASCIISafe: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.def)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrBoxInvalid))
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Definition{Top: "bad"})
	})
}
