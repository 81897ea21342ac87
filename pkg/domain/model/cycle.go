package model

// ReleaseCycle is a synthetic weekly bucket of release items, keyed by the
// anchor weekday date its members roll up to. Cycles are always rebuilt from
// the flat item list, never mutated in place.
type ReleaseCycle struct {
	CycleKey         string        `json:"cycleKey"`                 // yyyy-MM-dd of the cycle end date, falls on the anchor weekday
	Headline         string        `json:"headline"`                 // Display string for the 7-day span ending at the cycle end
	ReleaseVersion   string        `json:"releaseVersion,omitempty"` // Greatest version among member items
	Items            []ReleaseItem `json:"items"`                    // Members preserving fetch order
	IsCurrentCycle   bool          `json:"isCurrentCycle"`           // Cycle end is today or in the future
	ExpectedLiveDate string        `json:"expectedLiveDate"`         // Cycle end + 8 days, yyyy-MM-dd
}
