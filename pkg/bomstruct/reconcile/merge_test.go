package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

func TestMergeAlternates(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "primary desc", 2, "R1,R2", "A", "10", ""))
	table.Append(makeRow("1", "Res", "alt desc", 0, "R1,R2", "B", "20", ""))
	table.Append(makeRow("2", "Cap", "cap desc", 1, "C1", "C", "30", ""))

	out := MergeAlternates(table)

	require.Equal(t, 2, out.Len())
	merged := out.Rows[0]
	assert.Equal(t, "primary desc\nalt desc", merged.Get(models.ColDescription))
	assert.Equal(t, "A\nB", merged.Get(models.ColManufacturer))
	assert.Equal(t, "10\n20", merged.Get(models.ColPartNumber))
	assert.Equal(t, 2.0, merged.Qty)
	assert.Equal(t, "R1,R2", merged.Get(models.ColDesignator))
	assert.Equal(t, "cap desc", out.Rows[1].Get(models.ColDescription))
}

func TestMergeAlternatesFillsSparseCellsFromPrimary(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "desc", 1, "R1", "A", "10", ""))
	table.Append(makeRow("1", "Res", "", 0, "R1", "B", "", ""))

	out := MergeAlternates(table)

	require.Equal(t, 1, out.Len())
	merged := out.Rows[0]
	// Empty alternate cells repeat the primary's value so the three lists
	// keep equal lengths.
	assert.Equal(t, "desc\ndesc", merged.Get(models.ColDescription))
	assert.Equal(t, "A\nB", merged.Get(models.ColManufacturer))
	assert.Equal(t, "10\n10", merged.Get(models.ColPartNumber))
}

func TestMergeThenExplodeRoundTrip(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Diode", "d1", 1, "D1", "A", "10", ""))
	table.Append(makeRow("1", "Diode", "d2", 0, "D1", "B", "20", ""))
	table.Rows[0].UnitPrice = 0.75

	merged := MergeAlternates(table)
	require.Equal(t, 1, merged.Len())

	out, err := ExplodeManufacturers(merged, models.ProfileFor(models.V3))
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	assert.Equal(t, "A", out.Rows[0].Get(models.ColManufacturer))
	assert.Equal(t, "10", out.Rows[0].Get(models.ColPartNumber))
	assert.Equal(t, 1.0, out.Rows[0].Qty)
	assert.Equal(t, 0.75, out.Rows[0].UnitPrice)

	assert.Equal(t, "B", out.Rows[1].Get(models.ColManufacturer))
	assert.Equal(t, "20", out.Rows[1].Get(models.ColPartNumber))
	assert.Equal(t, 0.0, out.Rows[1].Qty)
	assert.Equal(t, 0.0, out.Rows[1].UnitPrice)
}
