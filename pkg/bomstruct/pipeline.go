package bomstruct

import (
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/classify"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/cleanup"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/designator"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/extract"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/models"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/reconcile"
)

// Description strings whose rows never belong in an electrical BOM.
var unwantedEBOMDescriptions = []string{
	"Glue", "Solder", "Compound", "Conformal", "Coating", "Screw", "Wire", "AWG",
}

var unwantedEBOMComponentTypes = []string{"PCB", "Wire"}

// Result carries the normalized table and the template version it was built
// from.
type Result struct {
	Table   *models.Table
	Version models.Version
}

// Run reads the BOM spreadsheet at path and produces the normalized table
// for the requested output kind. Any data-quality fault aborts the run with
// a typed error; the caller decides process lifecycle.
func Run(path string, opts Options) (*Result, error) {
	log := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetList()[0]
	}
	log.Info("reading BOM sheet", zap.String("file", path), zap.String("sheet", sheet))

	table, version, err := extract.Extract(f, sheet, opts.Output.SourceFor(), log)
	if err != nil {
		return nil, err
	}
	profile := models.ProfileFor(version)

	if opts.Output == models.OutputCostWalk {
		table, err = runCostWalk(table, profile, log)
	} else {
		table, err = runUpload(table, profile, opts.Output, log)
	}
	if err != nil {
		return nil, err
	}

	outputColumns, err := models.OutputColumns(version, opts.Output)
	if err != nil {
		return nil, err
	}
	return &Result{Table: table.Project(outputColumns), Version: version}, nil
}

// runCostWalk produces the cost-walk view: groups reconciled and merged,
// zero-quantity rows dropped, multi-quantity rows split to one placement per
// row.
func runCostWalk(t *models.Table, profile models.Profile, log *zap.Logger) (*models.Table, error) {
	log.Info("reordering primary above alternates")
	t = reconcile.PrimaryAboveAlternate(t, profile)

	before := t.Len()
	t = reconcile.MergeAlternates(t)
	log.Info("merged alternate rows", zap.Int("before", before), zap.Int("after", t.Len()))

	t = cleanup.DropZeroQuantity(t)
	cleanup.Designators(t)
	designator.ExpandRanges(t)

	before = t.Len()
	t = reconcile.SplitQuantities(t)
	log.Info("split multi-quantity rows", zap.Int("before", before), zap.Int("after", t.Len()))

	return t, nil
}

// runUpload produces the database upload view for eBOM or cBOM: full fill
// and reconciliation, cleanup, classification, designator checks, and
// manufacturer explosion.
func runUpload(t *models.Table, profile models.Profile, kind models.OutputKind, log *zap.Logger) (*models.Table, error) {
	log.Info("filling sparse cells from adjacent alternates")
	reconcile.FillEmptyItems(t)
	reconcile.FillFromAboveAlternate(t, models.ColComponent)
	reconcile.FillFromAboveAlternate(t, models.ColDesignator)
	reconcile.ReplaceAltLabels(t)
	reconcile.FillMergedDesignators(t, profile)

	log.Info("reordering primary above alternates")
	t = reconcile.PrimaryAboveAlternate(t, profile)

	before := t.Len()
	t = reconcile.MergeAlternates(t)
	log.Info("merged alternate rows", zap.Int("before", before), zap.Int("after", t.Len()))

	t = cleanup.DropEmptyDesignator(t)
	t = cleanup.DropZeroQuantity(t)
	t = cleanup.DropQuantityBelow(t, 1)

	cleanup.Descriptions(t)
	t = cleanup.DropRowsContaining(t, models.ColDescription, cleanup.UnwantedUploadDescriptions)

	catalog, err := classify.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	classify.New(catalog, log).ClassifyTable(t)

	unwantedComponents := cleanup.UnwantedCBOMComponents
	if kind == models.OutputEBOMUpload {
		unwantedComponents = cleanup.UnwantedEBOMComponents
	}
	t = cleanup.DropRowsContaining(t, models.ColComponent, unwantedComponents)

	cleanup.Designators(t)
	designator.ExpandRanges(t)
	if err := designator.NormalizeAndValidate(t); err != nil {
		return nil, err
	}
	if err := designator.CheckDuplicates(t); err != nil {
		return nil, err
	}
	if err := designator.CheckQuantityCounts(t); err != nil {
		return nil, err
	}
	log.Info("designator checks passed", zap.Int("rows", t.Len()))

	if kind == models.OutputEBOMUpload {
		t = cleanup.DropRowsContaining(t, models.ColDescription, unwantedEBOMDescriptions)
		t = cleanup.DropRowsContaining(t, models.ColComponent, unwantedEBOMComponentTypes)
	}

	before = t.Len()
	t, err = reconcile.ExplodeManufacturers(t, profile)
	if err != nil {
		return nil, err
	}
	log.Info("exploded manufacturer rows", zap.Int("before", before), zap.Int("after", t.Len()))

	cleanup.Manufacturers(t)
	cleanup.PartNumbers(t)

	return t, nil
}
