// Package reconcile implements the stateful row-group engine: primary/
// alternate ordering, group merge, manufacturer explosion, quantity
// splitting and merged-designator fill.
package reconcile

import (
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// groupBuffer accumulates the rows of the in-progress designator group.
type groupBuffer struct {
	rows []models.Row
}

func (b *groupBuffer) empty() bool {
	return len(b.rows) == 0
}

// flush appends the buffered group to out and resets the buffer.
func (b *groupBuffer) flush(out *models.Table) {
	out.Rows = append(out.Rows, b.rows...)
	b.rows = nil
}

// insertPrimary prepends a non-zero-quantity row. When an alternate is
// already buffered, the Device Package, Item and Component values of the
// first two rows arrive transposed in the source data, so they are swapped
// back here.
func (b *groupBuffer) insertPrimary(row models.Row, swap bool) {
	b.rows = append([]models.Row{row}, b.rows...)
	if swap && len(b.rows) > 1 {
		for _, col := range []models.Column{models.ColDevicePackage, models.ColItem, models.ColComponent} {
			v0, v1 := b.rows[0].Get(col), b.rows[1].Get(col)
			b.rows[0].Set(col, v1)
			b.rows[1].Set(col, v0)
		}
	}
}

// appendAlternate appends a zero-quantity row to the end of the group.
func (b *groupBuffer) appendAlternate(row models.Row) {
	b.rows = append(b.rows, row)
}

// PrimaryAboveAlternate reorders each designator group so the primary row
// (non-zero quantity) sits above its alternates. Template 2.0 spreadsheets
// already arrive in this order and pass through unchanged.
func PrimaryAboveAlternate(t *models.Table, profile models.Profile) *models.Table {
	if profile.Version != models.V3 {
		return t
	}

	out := models.NewTable(t.Columns)
	var buf groupBuffer

	for _, row := range t.Rows {
		des := row.Get(models.ColDesignator)
		if (!buf.empty() && buf.rows[0].Get(models.ColDesignator) != des) || des == "" {
			buf.flush(out)
		}
		if row.Qty != 0 {
			buf.insertPrimary(row, profile.SwapOnPrimaryInsert)
		} else {
			buf.appendAlternate(row)
		}
	}
	if !buf.empty() {
		buf.flush(out)
	}
	return out
}
