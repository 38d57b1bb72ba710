package output

import (
	"encoding/json"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// ToJSON serializes the table as an array of column-keyed objects in table
// order.
func ToJSON(t *models.Table, pretty bool) ([]byte, error) {
	records := make([]map[string]interface{}, 0, t.Len())
	for _, row := range t.Rows {
		rec := make(map[string]interface{}, len(t.Columns))
		for _, col := range t.Columns {
			switch col {
			case models.ColQty:
				rec[string(col)] = row.Qty
			case models.ColUnitPrice:
				rec[string(col)] = row.UnitPrice
			default:
				rec[string(col)] = row.Get(col)
			}
		}
		records = append(records, rec)
	}

	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
