package diag

import (
	"fmt"

	"codelint/internal/source"
)

// Diagnostic is one reported defect.
type Diagnostic struct {
	RuleID     string   `json:"rule" msgpack:"rule"`
	Line       int      `json:"line" msgpack:"line"`
	Column     int      `json:"column" msgpack:"column"`
	Message    string   `json:"message" msgpack:"message"`
	Suggestion string   `json:"suggestion" msgpack:"suggestion"`
	Severity   Severity `json:"severity" msgpack:"severity"`
}

// Position returns the diagnostic location.
func (d Diagnostic) Position() source.Position {
	return source.Position{Line: d.Line, Col: d.Column}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d %s %s: %s", d.Line, d.Column, d.Severity, d.RuleID, d.Message)
}

type key struct {
	line, col int
	rule      string
}

func (d Diagnostic) key() key {
	return key{line: d.Line, col: d.Column, rule: d.RuleID}
}
