// Package rawtable holds a source file as read from disk: a header and rows
// of untyped string cells. It does no parsing or validation of cell values.
package rawtable

// Table is an in-memory tabular source with arbitrary column names.
type Table struct {
	// Columns are the header names exactly as they appear in the source.
	Columns []string

	// Rows hold the cells of every data line. A row may be shorter than
	// Columns, missing cells read as empty strings.
	Rows [][]string
}

// New creates a Table from a header and its rows.
func New(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of the first column with the given name,
// or -1 if the table has no such column.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row i, column idx. Out of range positions
// (including idx == -1) read as an empty string.
func (t *Table) Cell(i, idx int) string {
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Rename returns a shallow copy of the table with every column name passed
// through fn. Rows are shared with the original table.
func (t *Table) Rename(fn func(string) string) *Table {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = fn(c)
	}
	return &Table{Columns: cols, Rows: t.Rows}
}
