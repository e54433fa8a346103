// Package models defines the tabular and columnar data structures
// used by the conversion pipeline.
package models

// Table represents parsed tabular input: a header row and raw string
// data rows. Rows are normalized to the header width at parse time.
type Table struct {
	// Headers holds the column names in file order.
	Headers []string
	// Rows holds the raw cell values, one slice per data line,
	// each exactly len(Headers) long.
	Rows [][]string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns the raw values of the column at the given header
// index, one per row.
func (t *Table) Column(idx int) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}
