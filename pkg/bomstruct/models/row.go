package models

import "strconv"

// Row is one BOM line. All cells are strings; quantity and unit price are
// carried as typed numeric fields once extraction has run.
type Row struct {
	Cells     map[Column]string
	Qty       float64
	UnitPrice float64
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{Cells: make(map[Column]string)}
}

// Get returns the cell value for a column, or "" when absent.
func (r Row) Get(c Column) string {
	return r.Cells[c]
}

// Set writes a cell value.
func (r Row) Set(c Column, v string) {
	r.Cells[c] = v
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	cells := make(map[Column]string, len(r.Cells))
	for k, v := range r.Cells {
		cells[k] = v
	}
	return Row{Cells: cells, Qty: r.Qty, UnitPrice: r.UnitPrice}
}

// CellString renders a column value for output, formatting the numeric
// columns from their typed fields.
func (r Row) CellString(c Column) string {
	switch c {
	case ColQty:
		return strconv.FormatFloat(r.Qty, 'f', -1, 64)
	case ColUnitPrice:
		return strconv.FormatFloat(r.UnitPrice, 'f', -1, 64)
	}
	return r.Cells[c]
}
