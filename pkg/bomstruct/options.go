// Package bomstruct normalizes engineering BOM spreadsheets into clean,
// schema-conformant tables for cost analysis or database ingestion.
package bomstruct

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
)

// Options configures a normalization run.
type Options struct {
	// Output selects the normalized table layout (cost walk, cBOM upload,
	// eBOM upload). The source spreadsheet kind follows from it.
	Output models.OutputKind
	// Sheet names the workbook sheet holding the BOM. Empty selects the
	// workbook's first sheet.
	Sheet string
	// Logger receives per-stage progress. If nil, logging is disabled.
	Logger *zap.Logger
}

// ParseOutputKind maps a CLI argument to an output kind.
func ParseOutputKind(s string) (models.OutputKind, error) {
	switch models.OutputKind(s) {
	case models.OutputCostWalk:
		return models.OutputCostWalk, nil
	case models.OutputCBOMUpload:
		return models.OutputCBOMUpload, nil
	case models.OutputEBOMUpload:
		return models.OutputEBOMUpload, nil
	}
	return "", fmt.Errorf("invalid output kind: %s (must be costwalk, cbom, or ebom)", s)
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
