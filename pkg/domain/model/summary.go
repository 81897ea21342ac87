package model

import "time"

// CycleSummary is an LLM-produced description of one release cycle. The
// summary text is opaque decoration; nothing in the core depends on its
// shape or correctness.
type CycleSummary struct {
	CycleKey    string    `json:"cycleKey"`
	Summary     string    `json:"summary"`
	Model       string    `json:"model,omitempty"` // LLM model that produced the text
	GeneratedAt time.Time `json:"generatedAt"`
}
