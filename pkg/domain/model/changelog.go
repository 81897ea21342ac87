package model

import "time"

// ChangeType classifies a release item
type ChangeType string

const (
	ChangeTypeFeature ChangeType = "Feature"
	ChangeTypeBugFix  ChangeType = "BugFix"
)

// Valid reports whether the value is a known change type
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeTypeFeature, ChangeTypeBugFix:
		return true
	default:
		return false
	}
}

// ReleaseItem represents one parsed bullet line of the changelog
type ReleaseItem struct {
	Title        string     `json:"title"`               // Cleaned display text, never empty
	Type         ChangeType `json:"type"`                // Feature or BugFix
	Connector    string     `json:"connector,omitempty"` // Normalized connector name, empty if the bullet has none
	PRNumber     string     `json:"prNumber,omitempty"`  // Present together with PRURL or not at all
	PRURL        string     `json:"prUrl,omitempty"`     // GitHub pull request URL
	OriginalDate string     `json:"originalDate"`        // yyyy-MM-dd of the owning version header
	Version      string     `json:"version,omitempty"`   // Version id of the owning header
}

// VersionSection represents one version header block in the source document.
// Sections exist only during a parse pass; downstream consumers work with the
// flat item list, which carries OriginalDate/Version as the only trace of
// section ownership.
type VersionSection struct {
	VersionID   string        // e.g. "2026.1.5.0"
	ReleaseDate string        // yyyy-MM-dd derived from the first three version components
	Items       []ReleaseItem // Bullets in document order
}

// Snapshot is the result of one fetch+parse pass over the changelog
type Snapshot struct {
	ID        string        `json:"id"`        // Unique per fetch pass
	FetchedAt time.Time     `json:"fetchedAt"` // Time the document was retrieved
	Items     []ReleaseItem `json:"items"`     // Flat item list in document order
}
