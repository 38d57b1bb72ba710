package reconcile

import (
	"math"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// SplitQuantities expands every row with an integral quantity greater than
// one into quantity-1 rows, peeling one designator token off the front per
// new row. Fractional quantities pass through unchanged.
func SplitQuantities(t *models.Table) *models.Table {
	out := models.NewTable(t.Columns)

	for _, row := range t.Rows {
		rest := row.Clone()
		for rest.Qty > 1 && rest.Qty == math.Trunc(rest.Qty) {
			tokens := strings.Split(rest.Get(models.ColDesignator), ",")

			nr := rest.Clone()
			nr.Qty = 1
			nr.Set(models.ColDesignator, tokens[0])
			out.Append(nr)

			rest.Qty--
			rest.Set(models.ColDesignator, strings.Join(tokens[1:], ","))
		}
		out.Append(rest)
	}
	return out
}
