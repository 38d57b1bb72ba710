package designator

import (
	"fmt"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// DuplicateDesignatorError indicates the same designator token appears on
// more than one BOM line, making component-to-location assignment ambiguous.
type DuplicateDesignatorError struct {
	Duplicates []string
}

func (e *DuplicateDesignatorError) Error() string {
	return fmt.Sprintf("duplicate reference designators found: %s",
		strings.Join(e.Duplicates, ", "))
}

// QuantityMismatchError indicates a row whose designator token count
// disagrees with its stated quantity.
type QuantityMismatchError struct {
	RowIndex        int
	Item            string
	Qty             float64
	DesignatorCount int
}

func (e *QuantityMismatchError) Error() string {
	return fmt.Sprintf("row %d (item %q): quantity %v does not match %d reference designators",
		e.RowIndex, e.Item, e.Qty, e.DesignatorCount)
}

// CheckDuplicates flattens every row's designator tokens into one multiset
// across the whole table and fails when any token appears more than once.
func CheckDuplicates(t *models.Table) error {
	seen := make(map[string]bool)
	var duplicates []string
	for i := range t.Rows {
		for _, tok := range SplitTokens(t.Rows[i].Get(models.ColDesignator)) {
			if seen[tok] {
				duplicates = append(duplicates, tok)
			}
			seen[tok] = true
		}
	}
	if len(duplicates) > 0 {
		return &DuplicateDesignatorError{Duplicates: duplicates}
	}
	return nil
}

// CheckQuantityCounts verifies for every row that the number of
// comma-separated designator tokens equals the stated quantity exactly.
func CheckQuantityCounts(t *models.Table) error {
	for i := range t.Rows {
		row := t.Rows[i]
		count := len(strings.Split(row.Get(models.ColDesignator), ","))
		if float64(count) != row.Qty {
			return &QuantityMismatchError{
				RowIndex:        i,
				Item:            row.Get(models.ColItem),
				Qty:             row.Qty,
				DesignatorCount: count,
			}
		}
	}
	return nil
}
