// Package designator holds the pure functions operating on reference
// designator cells: range expansion, syntax validation, duplicate detection
// and quantity reconciliation.
package designator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// Strict range pattern: no spaces around the dash. Prefix equality on both
// sides is checked separately since RE2 has no backreferences.
var rangeRE = regexp.MustCompile(`^([A-Za-z]+)(\d+)-([A-Za-z]+)(\d+)$`)

// ExpandCell expands compressed designator ranges within one cell.
// "R1, R3-R6, R12" becomes "R1,R3,R4,R5,R6,R12". Descending ranges expand in
// reverse order. Tokens with mismatched prefixes pass through unchanged.
func ExpandCell(cell string) string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := rangeRE.FindStringSubmatch(part)
		if m == nil || m[1] != m[3] {
			out = append(out, part)
			continue
		}
		start, _ := strconv.Atoi(m[2])
		end, _ := strconv.Atoi(m[4])
		step := 1
		if end < start {
			step = -1
		}
		for i := start; i != end+step; i += step {
			out = append(out, fmt.Sprintf("%s%d", m[1], i))
		}
	}
	return strings.Join(out, ",")
}

// ExpandRanges expands compressed ranges in every row's designator cell.
func ExpandRanges(t *models.Table) {
	for i := range t.Rows {
		row := t.Rows[i]
		row.Set(models.ColDesignator, ExpandCell(row.Get(models.ColDesignator)))
	}
}
