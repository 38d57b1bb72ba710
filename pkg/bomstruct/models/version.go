package models

import "errors"

// ErrUnsupportedTemplateVersion indicates the column set matches neither
// supported BOM template schema.
var ErrUnsupportedTemplateVersion = errors.New(
	"unsupported BOM template version: only template 2.0 and 3.0 can be processed")

// Version is the BOM spreadsheet template generation.
type Version int

const (
	VersionUnknown Version = iota
	V2
	V3
)

func (v Version) String() string {
	switch v {
	case V2:
		return "2.0"
	case V3:
		return "3.0"
	}
	return "unknown"
}

// Profile consolidates the template-version-dependent behavior consumed by
// the pipeline stages, so version branching lives in one place.
type Profile struct {
	Version Version

	// SwapOnPrimaryInsert enables the Device Package/Item/Component value
	// swap between the first two buffered rows when a primary row is
	// inserted above an existing alternate.
	SwapOnPrimaryInsert bool

	// FillMergedDesignators enables copying a designator down from the row
	// above when the spreadsheet had merged designator cells.
	FillMergedDesignators bool

	// ExplodeExceptions lists component-type substrings whose rows keep
	// their multi-valued manufacturer cell instead of being exploded.
	ExplodeExceptions []string

	// ZeroPriceOnExplode forces unit price to zero on every exploded row
	// after the first.
	ZeroPriceOnExplode bool
}

// ProfileFor returns the behavior profile for a template version.
func ProfileFor(v Version) Profile {
	switch v {
	case V2:
		return Profile{
			Version:           V2,
			ExplodeExceptions: []string{"Res", "Cap", "Ind"},
		}
	case V3:
		return Profile{
			Version:               V3,
			SwapOnPrimaryInsert:   true,
			FillMergedDesignators: true,
			ZeroPriceOnExplode:    true,
		}
	}
	return Profile{Version: VersionUnknown}
}

// DetectVersion decides the template version from the extracted header set.
// Template 2.0 carries a Critical Component column, 3.0 a Classification
// column.
func DetectVersion(headers []string) (Version, error) {
	for _, h := range headers {
		if h == string(ColCritical) {
			return V2, nil
		}
	}
	for _, h := range headers {
		if h == string(ColClassification) {
			return V3, nil
		}
	}
	return VersionUnknown, ErrUnsupportedTemplateVersion
}
