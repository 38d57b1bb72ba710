package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// ErrHeaderNotFound indicates no raw row contained all of the BOM header
// marker labels.
var ErrHeaderNotFound = errors.New("no row matching the BOM header markers was found")

// ColumnLookupError indicates a canonical column could not be resolved
// against the raw header row.
type ColumnLookupError struct {
	Column  models.Column
	Matches int
}

func (e *ColumnLookupError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("more than one header cell matched column %q", string(e.Column))
	}
	return fmt.Sprintf("no header cell matched column %q", string(e.Column))
}

// LocateHeader scans raw rows top to bottom and returns the index of the
// first row containing every marker label. Marker comparison is a substring
// match on trimmed cells.
func LocateHeader(rows [][]string, markers []models.Column) (int, error) {
	for i, row := range rows {
		if rowHasAllMarkers(row, markers) {
			return i, nil
		}
	}
	return 0, ErrHeaderNotFound
}

func rowHasAllMarkers(row []string, markers []models.Column) bool {
	for _, marker := range markers {
		found := false
		for _, cell := range row {
			if strings.Contains(strings.TrimSpace(cell), string(marker)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// findColumn resolves a canonical column against the raw header row. An
// exact case-insensitive match wins; otherwise a unique case-insensitive
// substring match is accepted.
func findColumn(header []string, col models.Column) (int, error) {
	want := strings.ToLower(string(col))
	for i, cell := range header {
		if strings.ToLower(strings.TrimSpace(cell)) == want {
			return i, nil
		}
	}

	matches := []int{}
	for i, cell := range header {
		if strings.Contains(strings.ToLower(cell), want) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return 0, &ColumnLookupError{Column: col, Matches: len(matches)}
}
