package designator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// Designator rule: starts with a letter, contains letters, digits, plus,
// minus, underscore, and ends with a letter, digit, plus or minus.
var tokenRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+\-_]*[A-Za-z0-9+\-]$`)

// pcbLiteral is the one token accepted outside the pattern.
const pcbLiteral = "PCB"

var splitRE = regexp.MustCompile(`[,:;]`)

// InvalidDesignatorError indicates a designator token that fails the format
// rule. A malformed designator cannot be safely attributed to a physical
// placement, so the run must stop.
type InvalidDesignatorError struct {
	RowIndex int
	Token    string
	Cell     string
}

func (e *InvalidDesignatorError) Error() string {
	return fmt.Sprintf("row %d: invalid reference designator %q in cell %q",
		e.RowIndex, e.Token, e.Cell)
}

// SplitTokens splits a designator cell on comma, colon and semicolon,
// trimming each token and dropping empties.
func SplitTokens(cell string) []string {
	var out []string
	for _, tok := range splitRE.Split(cell, -1) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// NormalizeAndValidate uppercases and validates every designator token in
// the table, rewriting each cell as a comma-joined token list.
func NormalizeAndValidate(t *models.Table) error {
	for i := range t.Rows {
		row := t.Rows[i]
		cell := row.Get(models.ColDesignator)
		tokens := SplitTokens(cell)
		for j, tok := range tokens {
			tok = strings.ToUpper(tok)
			if !tokenRE.MatchString(tok) && tok != pcbLiteral {
				return &InvalidDesignatorError{RowIndex: i, Token: tok, Cell: cell}
			}
			tokens[j] = tok
		}
		row.Set(models.ColDesignator, strings.Join(tokens, ","))
	}
	return nil
}
