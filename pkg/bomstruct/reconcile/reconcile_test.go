package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

var testColumns = []models.Column{
	models.ColItem, models.ColComponent, models.ColDescription,
	models.ColQty, models.ColDesignator, models.ColManufacturer,
	models.ColPartNumber, models.ColDevicePackage,
}

func makeRow(item, component, description string, qty float64, des, mfg, pn, pkg string) models.Row {
	row := models.NewRow()
	row.Set(models.ColItem, item)
	row.Set(models.ColComponent, component)
	row.Set(models.ColDescription, description)
	row.Set(models.ColDesignator, des)
	row.Set(models.ColManufacturer, mfg)
	row.Set(models.ColPartNumber, pn)
	row.Set(models.ColDevicePackage, pkg)
	row.Qty = qty
	return row
}

func TestPrimaryAboveAlternateReordersGroup(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("X", "Res ALT", "alt first", 0, "R1", "A", "1", ""))
	table.Append(makeRow("Y", "Res", "primary second", 5, "R1", "B", "2", ""))

	out := PrimaryAboveAlternate(table, models.ProfileFor(models.V3))

	require.Equal(t, 2, out.Len())
	assert.Equal(t, 5.0, out.Rows[0].Qty)
	assert.Equal(t, 0.0, out.Rows[1].Qty)
	// The Item value travels with the head position, not the inserted row.
	assert.Equal(t, "X", out.Rows[0].Get(models.ColItem))
	assert.Equal(t, "Y", out.Rows[1].Get(models.ColItem))
	// Scalar fields outside the swap set stay with their row.
	assert.Equal(t, "B", out.Rows[0].Get(models.ColManufacturer))
	assert.Equal(t, "A", out.Rows[1].Get(models.ColManufacturer))
}

func TestPrimaryAboveAlternateFlushesOnDesignatorChange(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "", 0, "R1", "A", "1", ""))
	table.Append(makeRow("2", "Res", "", 1, "R1", "B", "2", ""))
	table.Append(makeRow("3", "Cap", "", 1, "C1", "C", "3", ""))

	out := PrimaryAboveAlternate(table, models.ProfileFor(models.V3))

	require.Equal(t, 3, out.Len())
	assert.Equal(t, "R1", out.Rows[0].Get(models.ColDesignator))
	assert.Equal(t, 1.0, out.Rows[0].Qty)
	assert.Equal(t, "C1", out.Rows[2].Get(models.ColDesignator))
}

func TestPrimaryAboveAlternateEmptyDesignatorBreaksGroup(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("1", "Res", "", 1, "R1", "A", "1", ""))
	table.Append(makeRow("2", "Glue", "", 0.5, "", "B", "2", ""))

	out := PrimaryAboveAlternate(table, models.ProfileFor(models.V3))

	require.Equal(t, 2, out.Len())
	assert.Equal(t, "R1", out.Rows[0].Get(models.ColDesignator))
	assert.Equal(t, "", out.Rows[1].Get(models.ColDesignator))
}

func TestPrimaryAboveAlternateV2PassThrough(t *testing.T) {
	table := models.NewTable(testColumns)
	table.Append(makeRow("X", "Res", "", 0, "R1", "A", "1", ""))
	table.Append(makeRow("Y", "Res", "", 5, "R1", "B", "2", ""))

	out := PrimaryAboveAlternate(table, models.ProfileFor(models.V2))

	require.Equal(t, 2, out.Len())
	assert.Equal(t, 0.0, out.Rows[0].Qty)
	assert.Equal(t, "X", out.Rows[0].Get(models.ColItem))
}
