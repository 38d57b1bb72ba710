package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

func newTestClassifier(t *testing.T) *Classifier {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	return New(catalog, zap.NewNop())
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"noise token stripped", "Ceramic capacitorSMD", "Capacitor"},
		{"exact alias", "Zener Diode", "Diode"},
		{"perfect key", "Resistor", "Resistor"},
		{"case-insensitive", "TRANSISTOR", "Transistor"},
		{"typo within edit distance", "Resistr", "Resistor"},
		{"mov alias", "Varistor", "MOV/Varistor"},
		{"no neighbor in catalog", "XQZW-99 widget assembly", "*XQZW-99 widget assembly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.raw))
		})
	}
}

func TestClassifyTable(t *testing.T) {
	c := newTestClassifier(t)

	table := models.NewTable([]models.Column{models.ColComponent})
	for _, raw := range []string{"Ceramic capacitor", "totally unknown gizmo"} {
		row := models.NewRow()
		row.Set(models.ColComponent, raw)
		table.Append(row)
	}

	c.ClassifyTable(table)

	assert.Equal(t, "Capacitor", table.Rows[0].Get(models.ColComponent))
	assert.Equal(t, "*totally unknown gizmo", table.Rows[1].Get(models.ColComponent))
}

func TestBestJaccard(t *testing.T) {
	refs := []string{"banana", "orange", "pineapple", "grape"}

	best, score, ok := bestJaccard("apple", refs)
	require.True(t, ok)
	assert.Equal(t, "pineapple", best)
	assert.Greater(t, score, jaccardThreshold)

	_, _, ok = bestJaccard("zzzz", refs)
	assert.False(t, ok)
}

func TestBestJaccardPerfectMatchStopsEarly(t *testing.T) {
	refs := []string{"aple", "apple", "apples"}
	best, score, ok := bestJaccard("Apple ", refs)
	require.True(t, ok)
	assert.Equal(t, "aple", best)
	assert.Equal(t, 1.0, score)
}

func TestBestLevenshtein(t *testing.T) {
	refs := []string{"banana", "orange", "apples", "grape"}

	best, distance, ok := bestLevenshtein("apple", refs)
	require.True(t, ok)
	assert.Equal(t, "apples", best)
	assert.Equal(t, 1, distance)

	_, _, ok = bestLevenshtein("zzzzzzzzzz", refs)
	assert.False(t, ok)
}

func TestDualGateDisagreementYieldsMarker(t *testing.T) {
	entries := []models.CatalogEntry{
		{Key: "Alpha", Aliases: []string{"abcdef"}},
		{Key: "Beta", Aliases: []string{"fedcab"}},
	}
	catalog, err := models.NewCatalog(entries)
	require.NoError(t, err)
	c := New(catalog, zap.NewNop())

	// "fedcax" shares its full character set direction with both aliases
	// for Jaccard but sits closer to "fedcab" by edit distance, so the two
	// algorithms disagree and the original label is flagged.
	assert.Equal(t, "*fedcax", c.Classify("fedcax"))
}
