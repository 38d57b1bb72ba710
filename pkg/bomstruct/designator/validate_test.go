package designator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

func tableWithDesignators(cells ...string) *models.Table {
	table := models.NewTable([]models.Column{models.ColItem, models.ColDesignator})
	for _, cell := range cells {
		row := models.NewRow()
		row.Set(models.ColDesignator, cell)
		table.Append(row)
	}
	return table
}

func TestNormalizeAndValidate(t *testing.T) {
	table := tableWithDesignators("r1, r2 ;c3:d4", "PCB", "SW-1,J1+")

	require.NoError(t, NormalizeAndValidate(table))

	assert.Equal(t, "R1,R2,C3,D4", table.Rows[0].Get(models.ColDesignator))
	assert.Equal(t, "PCB", table.Rows[1].Get(models.ColDesignator))
	assert.Equal(t, "SW-1,J1+", table.Rows[2].Get(models.ColDesignator))
}

func TestNormalizeAndValidateRejectsBadToken(t *testing.T) {
	table := tableWithDesignators("R1", "1BAD")

	err := NormalizeAndValidate(table)

	var invalid *InvalidDesignatorError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.RowIndex)
	assert.Equal(t, "1BAD", invalid.Token)
}

func TestNormalizeAndValidateRejectsTrailingUnderscore(t *testing.T) {
	table := tableWithDesignators("R1_")

	var invalid *InvalidDesignatorError
	require.ErrorAs(t, NormalizeAndValidate(table), &invalid)
}

func TestCheckDuplicates(t *testing.T) {
	table := tableWithDesignators("R1,R2", "R3,R5", "R5")

	err := CheckDuplicates(table)

	var dup *DuplicateDesignatorError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"R5"}, dup.Duplicates)
}

func TestCheckDuplicatesClean(t *testing.T) {
	table := tableWithDesignators("R1,R2", "R3")
	assert.NoError(t, CheckDuplicates(table))
}

func TestCheckQuantityCounts(t *testing.T) {
	table := tableWithDesignators("R1,R2", "R3")
	table.Rows[0].Qty = 2
	table.Rows[1].Qty = 1
	require.NoError(t, CheckQuantityCounts(table))

	table.Rows[1].Qty = 3
	var mismatch *QuantityMismatchError
	require.ErrorAs(t, CheckQuantityCounts(table), &mismatch)
	assert.Equal(t, 1, mismatch.RowIndex)
	assert.Equal(t, 1, mismatch.DesignatorCount)
	assert.Equal(t, 3.0, mismatch.Qty)
}
