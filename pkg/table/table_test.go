package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/griddle/pkg/errors"
)

func TestNew(t *testing.T) {
	tbl, err := New("MyTable", []string{"Column1", "Column2"})
	require.NoError(t, err)

	assert.Equal(t, "MyTable", tbl.Name())
	assert.Equal(t, []string{"Column1", "Column2"}, tbl.Columns())
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, "MyTable (0 rows)", tbl.String())
}

func TestNewRequiresColumns(t *testing.T) {
	_, err := New("Empty", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoColumns))

	_, err = New("Empty", []string{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoColumns))
}

func TestNewCopiesColumns(t *testing.T) {
	cols := []string{"A", "B"}
	tbl, err := New("T", cols)
	require.NoError(t, err)

	cols[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, tbl.Columns())
}

func TestAddRow(t *testing.T) {
	tbl, err := New("MyTable", []string{"Column1", "Column2"})
	require.NoError(t, err)

	require.NoError(t, tbl.AddRow("Value1", "Value2"))
	require.NoError(t, tbl.AddRow("Value3", "Value4"))
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "MyTable (2 rows)", tbl.String())
}

func TestAddRowCoercesValues(t *testing.T) {
	tbl, err := New("T", []string{"N", "B", "F"})
	require.NoError(t, err)

	require.NoError(t, tbl.AddRow(42, true, 1.5))
	assert.Equal(t, "42,true,1.5", tbl.ToCSV(DefaultCSVOptions())[len("N,B,F\n"):])
}

func TestAddRowArity(t *testing.T) {
	tbl, err := New("T", []string{"A", "B"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		values []interface{}
	}{
		{"too few", []interface{}{"x"}},
		{"too many", []interface{}{"x", "y", "z"}},
		{"none", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.AddRow(tt.values...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrArityMismatch))
		})
	}

	// Rejected rows must not leave partial state.
	assert.Equal(t, 0, tbl.NumRows())
}
