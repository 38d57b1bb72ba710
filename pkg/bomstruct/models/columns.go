package models

// Column is a canonical BOM column name. The names are standardized across
// eBOM, cBOM and cost walk outputs and follow the template v2.0/v3.0 labels.
type Column string

const (
	ColItem           Column = "Item"
	ColComponent      Column = "Component"
	ColDescription    Column = "Description"
	ColType           Column = "Type"
	ColDevicePackage  Column = "Device Package"
	ColCritical       Column = "Critical Component"
	ColClassification Column = "Classification"
	ColManufacturer   Column = "Manufacturer"
	ColPartNumber     Column = "Manufacturer P/N"
	ColQty            Column = "Qty"
	ColDesignator     Column = "Designator"
	ColUnitPrice      Column = "U/P RMB W/O VAT"
)

// HeaderMarkers are the column labels that must all appear in a raw row for
// it to be promoted to the BOM header.
var HeaderMarkers = []Column{ColDesignator, ColManufacturer, ColQty}

var costWalkColumnsV2 = []Column{
	ColItem, ColDesignator, ColComponent, ColDescription,
	ColManufacturer, ColPartNumber, ColQty, ColUnitPrice, ColType,
}

var costWalkColumnsV3 = []Column{
	ColItem, ColDesignator, ColComponent, ColDescription,
	ColManufacturer, ColPartNumber, ColQty, ColUnitPrice, ColDevicePackage,
}

var cbomColumnsV2 = []Column{
	ColItem, ColComponent, ColDescription, ColQty, ColDesignator,
	ColCritical, ColManufacturer, ColPartNumber, ColUnitPrice, ColType,
}

var ebomColumnsV2 = []Column{
	ColItem, ColComponent, ColDescription, ColQty, ColDesignator,
	ColCritical, ColManufacturer, ColPartNumber, ColType,
}

var cbomColumnsV3 = []Column{
	ColItem, ColComponent, ColDescription, ColQty, ColDesignator,
	ColClassification, ColManufacturer, ColPartNumber, ColUnitPrice, ColDevicePackage,
}

var ebomColumnsV3 = []Column{
	ColItem, ColComponent, ColDescription, ColQty, ColDesignator,
	ColClassification, ColManufacturer, ColPartNumber, ColDevicePackage,
}

// SourceKind identifies the kind of BOM spreadsheet being ingested.
type SourceKind string

const (
	SourceEBOM SourceKind = "ebom"
	SourceCBOM SourceKind = "cbom"
)

// OutputKind identifies the normalized table layout being produced.
type OutputKind string

const (
	OutputCostWalk   OutputKind = "costwalk"
	OutputCBOMUpload OutputKind = "cbom"
	OutputEBOMUpload OutputKind = "ebom"
)

// SourceFor returns the spreadsheet kind an output kind is built from.
func (k OutputKind) SourceFor() SourceKind {
	if k == OutputEBOMUpload {
		return SourceEBOM
	}
	return SourceCBOM
}

// SourceColumns returns the column set extracted from a source spreadsheet
// for the given template version and source kind.
func SourceColumns(v Version, kind SourceKind) ([]Column, error) {
	switch v {
	case V2:
		if kind == SourceEBOM {
			return ebomColumnsV2, nil
		}
		return cbomColumnsV2, nil
	case V3:
		if kind == SourceEBOM {
			return ebomColumnsV3, nil
		}
		return cbomColumnsV3, nil
	}
	return nil, ErrUnsupportedTemplateVersion
}

// OutputColumns returns the column projection for the given template version
// and output kind.
func OutputColumns(v Version, kind OutputKind) ([]Column, error) {
	switch v {
	case V2:
		switch kind {
		case OutputCostWalk:
			return costWalkColumnsV2, nil
		case OutputCBOMUpload:
			return cbomColumnsV2, nil
		case OutputEBOMUpload:
			return ebomColumnsV2, nil
		}
	case V3:
		switch kind {
		case OutputCostWalk:
			return costWalkColumnsV3, nil
		case OutputCBOMUpload:
			return cbomColumnsV3, nil
		case OutputEBOMUpload:
			return ebomColumnsV3, nil
		}
	}
	return nil, ErrUnsupportedTemplateVersion
}
