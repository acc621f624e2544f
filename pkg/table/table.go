// Package table renders columnar data as a box-drawn character grid, with
// CSV and HTML exports. Layout is recomputed on every render so a resized
// terminal is picked up between calls.
package table

import (
	"fmt"

	"github.com/arthur-debert/griddle/pkg/box"
	"github.com/arthur-debert/griddle/pkg/errors"
)

// Table holds a name, an ordered set of column labels and the appended
// rows. Values are coerced to strings at append time; rendering never sees
// anything but strings.
//
// A Table is not safe for concurrent mutation while rendering; callers are
// expected to append and render sequentially.
type Table struct {
	name    string
	columns []string
	rows    [][]string
	box     box.Style
}

// New creates a table with the given name and column labels. A table must
// have at least one column.
func New(name string, columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.ErrNoColumns, "a table must have at least one column")
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Table{
		name:    name,
		columns: cols,
		box:     box.Square,
	}, nil
}

// SetBox selects the box style used by Render. Defaults to box.Square.
func (t *Table) SetBox(style box.Style) {
	t.box = style
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumRows returns the number of appended rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// AddRow appends a row. The value count must equal the column count;
// otherwise the row is rejected with ARITY_MISMATCH and the table is left
// unchanged. Values are stringified with %v.
func (t *Table) AddRow(values ...interface{}) error {
	if len(values) != len(t.columns) {
		return errors.Newf(errors.ErrArityMismatch,
			"invalid number of values (expected %d, found %d)", len(t.columns), len(values)).
			WithDetail("expected", len(t.columns)).
			WithDetail("found", len(values))
	}

	row := make([]string, len(values))
	for i, value := range values {
		row[i] = fmt.Sprintf("%v", value)
	}
	t.rows = append(t.rows, row)
	return nil
}

// String summarizes the table without rendering it.
func (t *Table) String() string {
	return fmt.Sprintf("%s (%d rows)", t.name, len(t.rows))
}
