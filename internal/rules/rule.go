package rules

import (
	"codelint/internal/diag"
)

// CheckFunc inspects a unit and reports findings through r.
type CheckFunc func(u *Unit, r *Reporter)

// Rule describes one checker. Severity is fixed per rule; every diagnostic
// the checker emits carries it.
type Rule struct {
	ID         string
	Severity   diag.Severity
	Summary    string // generic description, shown by `codelint rules`
	Suggestion string // generic remediation
	Check      CheckFunc
}

// Reporter binds emitted findings to a rule and converts offsets to positions.
type Reporter struct {
	rule *Rule
	unit *Unit
	out  diag.Reporter
}

// NewReporter returns a Reporter stamping rule's ID and severity.
func NewReporter(rule *Rule, u *Unit, out diag.Reporter) *Reporter {
	if out == nil {
		out = diag.NopReporter{}
	}
	return &Reporter{rule: rule, unit: u, out: out}
}

// At reports at a 1-based line and column. Columns below 1 are raised to 1.
func (r *Reporter) At(line, col int, msg, suggestion string) {
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	r.out.Report(diag.Diagnostic{
		RuleID:     r.rule.ID,
		Line:       line,
		Column:     col,
		Message:    msg,
		Suggestion: suggestion,
		Severity:   r.rule.Severity,
	})
}

// AtOffset reports at a byte offset of the unit text.
func (r *Reporter) AtOffset(off int, msg, suggestion string) {
	pos := r.unit.Index.Position(off)
	r.At(pos.Line, pos.Col, msg, suggestion)
}

// Run executes rule against u and returns its diagnostics in emission order.
func Run(rule *Rule, u *Unit) []diag.Diagnostic {
	var out diag.SliceReporter
	rule.Check(u, NewReporter(rule, u, &out))
	return out.Items
}
