package engine

import (
	"codelint/internal/diag"
	"codelint/internal/observ"
)

// Result is the outcome of analyzing one text.
type Result struct {
	// Diagnostics are sorted by (line, column) and unique per (line, column, rule).
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	// Truncated counts diagnostics cut by MaxDiagnostics. Score, Counts and
	// Suggestions always reflect the full list.
	Truncated   int           `json:"truncated,omitempty"`
	Score       int           `json:"score"`
	Grade       Grade         `json:"grade"`
	Counts      diag.Counts   `json:"counts"`
	Suggestions []string      `json:"suggestions"`
	Language    string        `json:"language"`
	Failures    []RuleFailure `json:"failures,omitempty"`
	Timings     observ.Report `json:"-"`
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	return r != nil && r.Counts.Errors > 0
}
