package models

// Table is an ordered sequence of rows under a fixed column set. Row order
// is semantically significant: it encodes primary/alternate adjacency and
// designator group membership before reconciliation.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable returns an empty table over the given columns.
func NewTable(columns []Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row to the end of the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// HasColumn reports whether the table carries the given column.
func (t *Table) HasColumn(c Column) bool {
	for _, col := range t.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// Project returns a new table restricted and reordered to the given column
// list. Row cell maps are shared with the receiver; callers that mutate the
// projection should clone rows first.
func (t *Table) Project(columns []Column) *Table {
	out := NewTable(columns)
	out.Rows = t.Rows
	return out
}
