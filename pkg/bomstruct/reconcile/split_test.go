package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

func TestSplitQuantities(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "", 3, "R1,R2,R3", "A", "10", ""))

	out := SplitQuantities(table)

	require.Equal(t, 3, out.Len())
	for i, want := range []string{"R1", "R2", "R3"} {
		assert.Equal(t, 1.0, out.Rows[i].Qty)
		assert.Equal(t, want, out.Rows[i].Get(models.ColDesignator))
	}
}

func TestSplitQuantitiesLeavesSingleRows(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "", 1, "R1", "A", "10", ""))

	out := SplitQuantities(table)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, 1.0, out.Rows[0].Qty)
	assert.Equal(t, "R1", out.Rows[0].Get(models.ColDesignator))
}

func TestSplitQuantitiesLeavesFractionalRows(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Glue", "", 2.5, "PCB", "A", "10", ""))

	out := SplitQuantities(table)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, 2.5, out.Rows[0].Qty)
	assert.Equal(t, "PCB", out.Rows[0].Get(models.ColDesignator))
}

func TestSplitQuantitiesInvariant(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "", 4, "R1,R2,R3,R4", "A", "10", ""))
	table.Append(makeRow("2", "Cap", "", 2, "C1,C2", "B", "20", ""))

	out := SplitQuantities(table)

	require.Equal(t, 6, out.Len())
	for _, row := range out.Rows {
		assert.Equal(t, 1.0, row.Qty)
		assert.NotContains(t, row.Get(models.ColDesignator), ",")
	}
}
