package table

import "strings"

// CSVOptions controls the CSV serialization.
type CSVOptions struct {
	Delimiter      string
	Quote          string
	LineTerminator string
}

// DefaultCSVOptions returns the conventional comma/double-quote/newline
// settings.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:      ",",
		Quote:          `"`,
		LineTerminator: "\n",
	}
}

// ToCSV serializes the header and rows. A field is quoted only when it
// contains the delimiter, the quote character or the line terminator;
// embedded quote characters are doubled (RFC 4180 section 2). Stored
// values are emitted verbatim, with no re-wrapping.
func (t *Table) ToCSV(opts CSVOptions) string {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.Quote == "" {
		opts.Quote = `"`
	}
	if opts.LineTerminator == "" {
		opts.LineTerminator = "\n"
	}

	records := make([]string, 0, len(t.rows)+1)
	records = append(records, csvRecord(t.columns, opts))
	for _, row := range t.rows {
		records = append(records, csvRecord(row, opts))
	}
	return strings.Join(records, opts.LineTerminator)
}

func csvRecord(fields []string, opts CSVOptions) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = csvField(field, opts)
	}
	return strings.Join(escaped, opts.Delimiter)
}

func csvField(field string, opts CSVOptions) string {
	needsQuoting := strings.Contains(field, opts.Delimiter) ||
		strings.Contains(field, opts.Quote) ||
		strings.Contains(field, opts.LineTerminator)
	if !needsQuoting {
		return field
	}
	return opts.Quote + strings.ReplaceAll(field, opts.Quote, opts.Quote+opts.Quote) + opts.Quote
}
