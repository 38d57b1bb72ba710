package reconcile

import (
	"strconv"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// maxItemNumber returns the largest numeric Item value in the table, or zero
// when no cell parses as a number.
func maxItemNumber(t *models.Table) int {
	max := 0
	for _, row := range t.Rows {
		if n, err := strconv.ParseFloat(row.Get(models.ColItem), 64); err == nil && int(n) > max {
			max = int(n)
		}
	}
	return max
}

func formatItemNumber(n int) string {
	return strconv.Itoa(n)
}

// FillMergedDesignators copies a designator down from the row above when the
// spreadsheet had vertically merged designator cells: the cell is empty and
// the description matches the previous row. Template 3.0 only.
func FillMergedDesignators(t *models.Table, profile models.Profile) {
	if !profile.FillMergedDesignators {
		return
	}
	for n := 1; n < len(t.Rows); n++ {
		row, prev := t.Rows[n], t.Rows[n-1]
		if row.Get(models.ColDesignator) != "" {
			continue
		}
		if row.Get(models.ColDescription) == prev.Get(models.ColDescription) {
			row.Set(models.ColDesignator, prev.Get(models.ColDesignator))
		}
	}
}

// FillEmptyItems fills empty Item cells: alternates (component contains
// "ALT") reuse the item number from the row above, any other empty cell gets
// the next sequential number after the current maximum.
func FillEmptyItems(t *models.Table) {
	next := maxItemNumber(t) + 1
	for n := 1; n < len(t.Rows); n++ {
		row := t.Rows[n]
		if row.Get(models.ColItem) != "" {
			continue
		}
		if strings.Contains(row.Get(models.ColComponent), "ALT") {
			row.Set(models.ColItem, t.Rows[n-1].Get(models.ColItem))
		} else {
			row.Set(models.ColItem, formatItemNumber(next))
			next++
		}
	}
}

// FillFromAboveAlternate fills an empty cell in the given column from the
// row above when both rows share the same Item value.
func FillFromAboveAlternate(t *models.Table, col models.Column) {
	for n := 1; n < len(t.Rows); n++ {
		row, prev := t.Rows[n], t.Rows[n-1]
		if row.Get(models.ColItem) == prev.Get(models.ColItem) && row.Get(col) == "" {
			row.Set(col, prev.Get(col))
		}
	}
}

// ReplaceAltLabels replaces a component cell still carrying an "ALT" label
// with the component value from the row above when both rows share the same
// Item value.
func ReplaceAltLabels(t *models.Table) {
	for n := 1; n < len(t.Rows); n++ {
		row, prev := t.Rows[n], t.Rows[n-1]
		if row.Get(models.ColItem) == prev.Get(models.ColItem) &&
			strings.Contains(row.Get(models.ColComponent), "ALT") {
			row.Set(models.ColComponent, prev.Get(models.ColComponent))
		}
	}
}
