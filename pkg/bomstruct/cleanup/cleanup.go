// Package cleanup holds the regex scrubbing passes and row drops applied to
// the normalized BOM table before checks and output projection.
package cleanup

import (
	"regexp"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

var (
	horizontalSpaceRE = regexp.MustCompile(`[^\S\r\n]+`)
	anySpaceRE        = regexp.MustCompile(`\s+`)
	multiSpaceRE      = regexp.MustCompile(` {2,}`)
	multiCommaRE      = regexp.MustCompile(`,{2,}`)
	designatorSepRE   = regexp.MustCompile(`[:;、'，]`)
	mfgPrefixRE       = regexp.MustCompile(`(?i)^(MANUFACTURER|MANU|MFG)`)
	coLtdRE           = regexp.MustCompile(`\.[,，]`)
	colonDotRE        = regexp.MustCompile(`[:.]`)
)

// fullWidthPunct maps full-width punctuation seen in source descriptions to
// its ASCII counterpart.
var fullWidthPunct = strings.NewReplacer(
	"，", ",", "（", "(", "）", ")", "；", ";", "：", ":",
)

func apply(t *models.Table, col models.Column, fn func(string) string) {
	if !t.HasColumn(col) {
		return
	}
	for i := range t.Rows {
		row := t.Rows[i]
		row.Set(col, fn(row.Get(col)))
	}
}

// Designators scrubs the designator column: strips whitespace, converts the
// alternate separator characters to commas and trims comma runs.
func Designators(t *models.Table) {
	apply(t, models.ColDesignator, func(s string) string {
		s = anySpaceRE.ReplaceAllString(s, "")
		s = designatorSepRE.ReplaceAllString(s, ",")
		s = multiCommaRE.ReplaceAllString(s, ",")
		return strings.Trim(s, ",")
	})
}

// Descriptions scrubs the description column: collapses spaces, converts
// full-width punctuation, normalizes separators to single commas.
func Descriptions(t *models.Table) {
	apply(t, models.ColDescription, func(s string) string {
		s = horizontalSpaceRE.ReplaceAllString(s, " ")
		s = fullWidthPunct.Replace(s)
		s = strings.ReplaceAll(s, ";", ",")
		s = multiCommaRE.ReplaceAllString(s, ",")
		s = strings.ReplaceAll(s, " ,", ",")
		s = strings.ReplaceAll(s, ", ", ",")
		s = strings.Trim(s, ",")
		return strings.Trim(s, " ")
	})
}

// Manufacturers scrubs the manufacturer column: drops MFG/MANU prefixes,
// fixes "Co.,Ltd" punctuation and joins newline lists with commas.
func Manufacturers(t *models.Table) {
	apply(t, models.ColManufacturer, func(s string) string {
		s = mfgPrefixRE.ReplaceAllString(s, " ")
		s = coLtdRE.ReplaceAllString(s, " ")
		s = colonDotRE.ReplaceAllString(s, " ")
		s = strings.Trim(s, " ")
		s = strings.ReplaceAll(s, "\n", ",")
		s = multiSpaceRE.ReplaceAllString(s, " ")
		return multiCommaRE.ReplaceAllString(s, ",")
	})
}

// PartNumbers scrubs the part number column.
func PartNumbers(t *models.Table) {
	apply(t, models.ColPartNumber, func(s string) string {
		s = multiSpaceRE.ReplaceAllString(s, " ")
		return strings.ReplaceAll(s, "\n", ",")
	})
}
