package reconcile

import (
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// mergedColumns are the fields accumulated as newline-delimited lists when
// alternates are merged into their primary row.
var mergedColumns = []models.Column{
	models.ColDescription, models.ColManufacturer, models.ColPartNumber,
}

// MergeAlternates collapses each designator group into one row whose
// Description, Manufacturer and Manufacturer P/N cells hold newline-joined
// lists, one entry per contributing row. An alternate's empty cell repeats
// the primary's value so the three lists stay the same length.
func MergeAlternates(t *models.Table) *models.Table {
	out := models.NewTable(t.Columns)

	var acc models.Row
	started := false
	seed := make(map[models.Column]string, len(mergedColumns))
	prevDesignator := ""

	for n, row := range t.Rows {
		if row.Get(models.ColDesignator) != prevDesignator || n == 0 {
			if started {
				out.Append(acc)
			}
			acc = row.Clone()
			started = true
			for _, col := range mergedColumns {
				seed[col] = row.Get(col)
			}
			prevDesignator = row.Get(models.ColDesignator)
			continue
		}
		for _, col := range mergedColumns {
			v := row.Get(col)
			if v == "" {
				v = seed[col]
			}
			acc.Set(col, acc.Get(col)+"\n"+v)
		}
	}
	if started {
		out.Append(acc)
	}
	return out
}
