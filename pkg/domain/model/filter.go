package model

// Filter selects release items. Every set field must match (AND semantics);
// a zero-value field means no constraint for that dimension.
type Filter struct {
	Connector string     // Exact match after connector normalization
	Type      ChangeType // Feature or BugFix
	FromDate  string     // Inclusive lower bound on OriginalDate, yyyy-MM-dd
	ToDate    string     // Inclusive upper bound on OriginalDate, yyyy-MM-dd
}

// IsZero reports whether no constraint is set
func (f Filter) IsZero() bool {
	return f.Connector == "" && f.Type == "" && f.FromDate == "" && f.ToDate == ""
}
