package reconcile

import (
	"fmt"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// CountMismatchError indicates a merged row whose manufacturer and part
// number lists disagree in length and cannot be reconciled by broadcasting a
// single part number.
type CountMismatchError struct {
	RowIndex      int
	Manufacturers []string
	PartNumbers   []string
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf(
		"row %d: %d manufacturers %v cannot be paired with %d part numbers %v; "+
			"the part number count must be one or match the manufacturer count",
		e.RowIndex, len(e.Manufacturers), e.Manufacturers,
		len(e.PartNumbers), e.PartNumbers)
}

func splitMultiValue(cell string) []string {
	var out []string
	for _, v := range strings.Split(cell, "\n") {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ExplodeManufacturers re-expands merged multi-valued rows into one row per
// manufacturer/part-number pair. Only the first exploded row keeps the
// quantity (and, for template 3.0, the unit price); the rest are zeroed so
// one physical placement is never counted twice. Rows whose component type
// matches a profile exception keep their merged cell untouched.
func ExplodeManufacturers(t *models.Table, profile models.Profile) (*models.Table, error) {
	out := models.NewTable(t.Columns)

	for i, row := range t.Rows {
		names := splitMultiValue(row.Get(models.ColManufacturer))
		partNumbers := splitMultiValue(row.Get(models.ColPartNumber))
		descriptions := splitMultiValue(row.Get(models.ColDescription))

		if len(names) != len(partNumbers) {
			if len(partNumbers) != 1 {
				return nil, &CountMismatchError{
					RowIndex:      i,
					Manufacturers: names,
					PartNumbers:   partNumbers,
				}
			}
			for len(partNumbers) < len(names) {
				partNumbers = append(partNumbers, partNumbers[0])
			}
		}

		if !shouldExplode(row.Get(models.ColComponent), profile.ExplodeExceptions) {
			out.Append(row)
			continue
		}

		for j, name := range names {
			nr := row.Clone()
			nr.Set(models.ColManufacturer, name)
			nr.Set(models.ColPartNumber, partNumbers[j])
			if j < len(descriptions) {
				nr.Set(models.ColDescription, descriptions[j])
			} else if len(descriptions) > 0 {
				nr.Set(models.ColDescription, descriptions[len(descriptions)-1])
			}
			if j != 0 {
				nr.Qty = 0
				if profile.ZeroPriceOnExplode {
					nr.UnitPrice = 0
				}
			}
			out.Append(nr)
		}
	}
	return out, nil
}

func shouldExplode(component string, exceptions []string) bool {
	for _, exc := range exceptions {
		if strings.Contains(strings.ToLower(component), strings.ToLower(exc)) {
			return false
		}
	}
	return true
}
