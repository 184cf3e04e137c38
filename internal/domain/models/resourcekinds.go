// internal/domain/models/resourcekinds.go
package models

// Canonical resource kind identifiers.
//
// These values are stored in the Resource.Kind field. The original site used
// "pdf", "youtube" and "web" for the same three kinds; human-facing labels
// live in the type label table below.
const (
	ResourceKindDocument = "document"
	ResourceKindVideo    = "video"
	ResourceKindLink     = "link"
)

// ResourceKinds is the closed set of allowed resource kinds.
//
// This slice is the single source of truth for validation. No other kind is
// valid in a catalog.
var ResourceKinds = []string{
	ResourceKindDocument,
	ResourceKindVideo,
	ResourceKindLink,
}

// Content type labels used by the type filter.
const (
	AllTypes     = "All Types"
	TypeLabelPDF = "PDF"
	TypeLabelYT  = "YouTube"
	TypeLabelWeb = "Web Links"
)

// TypeLabels lists the type filter vocabulary in display order, sentinel first.
var TypeLabels = []string{AllTypes, TypeLabelPDF, TypeLabelYT, TypeLabelWeb}

var kindByLabel = map[string]string{
	TypeLabelPDF: ResourceKindDocument,
	TypeLabelYT:  ResourceKindVideo,
	TypeLabelWeb: ResourceKindLink,
}

// IsValidResourceKind reports whether kind is one of ResourceKinds.
func IsValidResourceKind(kind string) bool {
	for _, k := range ResourceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// KindForTypeLabel maps a type filter label to its resource kind.
// The second result is false for the sentinel and for unknown labels.
func KindForTypeLabel(label string) (string, bool) {
	kind, ok := kindByLabel[label]
	return kind, ok
}

// TypeLabelForKind returns the human-facing label for a kind, or "" if the
// kind is unknown.
func TypeLabelForKind(kind string) string {
	for label, k := range kindByLabel {
		if k == kind {
			return label
		}
	}
	return ""
}
