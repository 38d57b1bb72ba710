// Package extract reads a BOM spreadsheet into the normalized table model:
// header location, template version detection, column extraction and
// numeric typing of the quantity and unit price columns.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// NumericCellError indicates a quantity or unit price cell could not be
// interpreted as a number.
type NumericCellError struct {
	RowIndex int
	Column   models.Column
	Value    string
}

func (e *NumericCellError) Error() string {
	return fmt.Sprintf("row %d: column %q holds non-numeric value %q",
		e.RowIndex, string(e.Column), e.Value)
}

// Extract reads one sheet of an open workbook and returns the typed BOM
// table together with the detected template version.
func Extract(f *excelize.File, sheet string, kind models.SourceKind, log *zap.Logger) (*models.Table, models.Version, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, models.VersionUnknown, err
	}

	headerIdx, err := LocateHeader(raw, models.HeaderMarkers)
	if err != nil {
		return nil, models.VersionUnknown, err
	}
	log.Info("located BOM header", zap.Int("row", headerIdx+1))

	header := raw[headerIdx]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	data := raw[headerIdx+1:]

	version, err := models.DetectVersion(header)
	if err != nil {
		return nil, models.VersionUnknown, err
	}
	log.Info("detected BOM template version", zap.Stringer("version", version))

	columns, err := models.SourceColumns(version, kind)
	if err != nil {
		return nil, version, err
	}

	indexes := make(map[models.Column]int, len(columns))
	for _, col := range columns {
		idx, err := findColumn(header, col)
		if err != nil {
			return nil, version, err
		}
		indexes[col] = idx
	}

	table := models.NewTable(columns)
	for _, rawRow := range data {
		row := models.NewRow()
		empty := true
		for _, col := range columns {
			var v string
			if idx := indexes[col]; idx < len(rawRow) {
				v = strings.TrimSpace(rawRow[idx])
			}
			row.Set(col, v)
			if v != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		table.Append(row)
	}

	if err := typeNumericColumns(table); err != nil {
		return nil, version, err
	}
	log.Info("extracted BOM table",
		zap.Int("rows", table.Len()), zap.Int("columns", len(table.Columns)))

	return table, version, nil
}

// typeNumericColumns parses the quantity and unit price cells into the typed
// row fields. Empty cells are treated as zero.
func typeNumericColumns(t *models.Table) error {
	hasPrice := t.HasColumn(models.ColUnitPrice)
	for i := range t.Rows {
		row := &t.Rows[i]
		qty, err := parseNumericCell(row.Get(models.ColQty))
		if err != nil {
			return &NumericCellError{RowIndex: i, Column: models.ColQty, Value: row.Get(models.ColQty)}
		}
		row.Qty = qty

		if hasPrice {
			price, err := parseNumericCell(row.Get(models.ColUnitPrice))
			if err != nil {
				return &NumericCellError{RowIndex: i, Column: models.ColUnitPrice, Value: row.Get(models.ColUnitPrice)}
			}
			row.UnitPrice = price
		}
	}
	return nil
}

func parseNumericCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
