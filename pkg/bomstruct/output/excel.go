// Package output serializes the normalized BOM table to xlsx and JSON.
package output

import (
	"github.com/xuri/excelize/v2"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// WriteExcel writes the table as a single-sheet workbook at path. The
// numeric columns are written as numbers so downstream tooling can sum them.
func WriteExcel(path, sheet string, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for c, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, string(col)); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			var value interface{}
			switch col {
			case models.ColQty:
				value = row.Qty
			case models.ColUnitPrice:
				value = row.UnitPrice
			default:
				value = row.Get(col)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
