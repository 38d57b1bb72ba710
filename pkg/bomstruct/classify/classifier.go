package classify

import (
	"strings"

	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// UnmatchedPrefix marks a component type that neither matching algorithm
// could agree on; the original label is kept behind it for manual review.
const UnmatchedPrefix = "*"

// noiseStripper removes packaging/alternate noise tokens that add nothing to
// type classification.
var noiseStripper = strings.NewReplacer("SMD", "", "DIP", "", "ALT", "", "SMT", "")

// Classifier resolves raw component-type labels against an alias catalog.
type Classifier struct {
	catalog *models.Catalog
	log     *zap.Logger
}

// New returns a classifier over the given catalog.
func New(catalog *models.Catalog, log *zap.Logger) *Classifier {
	return &Classifier{catalog: catalog, log: log}
}

// Classify maps one raw component-type label to its canonical type. When the
// Jaccard and Levenshtein matches disagree, or either finds no qualifying
// alias, the original label is returned prefixed with UnmatchedPrefix
// instead of failing the run: type classification is advisory and
// recoverable by manual review.
func (c *Classifier) Classify(raw string) string {
	stripped := noiseStripper.Replace(raw)
	aliases := c.catalog.Aliases()

	jacMatch, _, jacOK := bestJaccard(stripped, aliases)
	levMatch, _, levOK := bestLevenshtein(stripped, aliases)

	if !jacOK || !levOK || jacMatch != levMatch {
		return UnmatchedPrefix + raw
	}
	key, ok := c.catalog.KeyFor(jacMatch)
	if !ok {
		return UnmatchedPrefix + raw
	}
	return key
}

// ClassifyTable rewrites the Component column of every row with its
// canonical type or the unmatched marker.
func (c *Classifier) ClassifyTable(t *models.Table) {
	changed := 0
	for i := range t.Rows {
		row := t.Rows[i]
		raw := row.Get(models.ColComponent)
		result := c.Classify(raw)
		if !strings.HasPrefix(result, UnmatchedPrefix) {
			changed++
		}
		c.log.Debug("classified component type",
			zap.String("raw", raw), zap.String("result", result))
		row.Set(models.ColComponent, result)
	}
	c.log.Info("normalized component type labels",
		zap.Int("classified", changed), zap.Int("rows", t.Len()))
}
