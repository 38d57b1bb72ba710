package cleanup

import (
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// Description strings whose rows are removed before database upload.
var UnwantedUploadDescriptions = []string{
	"Glue", "Solder", "Compound", "Conformal", "Coating", "Screw",
}

// Component types removed before eBOM database upload.
var UnwantedEBOMComponents = []string{
	"PCB", "Wire", "Lens", "Chimney", "Heat Shrink", "Screw", "Jumper",
}

// Component types removed before cBOM database upload.
var UnwantedCBOMComponents = []string{
	"Wire", "Lens", "Chimney", "Heat Shrink", "Screw", "Jumper",
}

func filter(t *models.Table, keep func(models.Row) bool) *models.Table {
	out := models.NewTable(t.Columns)
	for _, row := range t.Rows {
		if keep(row) {
			out.Append(row)
		}
	}
	return out
}

// DropRowsContaining removes rows whose cell in the given column contains
// any of the reference strings, case-insensitively.
func DropRowsContaining(t *models.Table, col models.Column, references []string) *models.Table {
	return filter(t, func(r models.Row) bool {
		cell := strings.ToLower(r.Get(col))
		for _, ref := range references {
			if strings.Contains(cell, strings.ToLower(ref)) {
				return false
			}
		}
		return true
	})
}

// DropZeroQuantity removes rows with quantity zero.
func DropZeroQuantity(t *models.Table) *models.Table {
	return filter(t, func(r models.Row) bool { return r.Qty != 0 })
}

// DropQuantityBelow removes rows with quantity under the threshold.
func DropQuantityBelow(t *models.Table, threshold float64) *models.Table {
	return filter(t, func(r models.Row) bool { return r.Qty >= threshold })
}

// DropEmptyDesignator removes rows with an empty designator cell.
func DropEmptyDesignator(t *models.Table) *models.Table {
	return filter(t, func(r models.Row) bool { return r.Get(models.ColDesignator) != "" })
}
