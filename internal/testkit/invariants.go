// Package testkit holds invariant checks shared by the tests of the engine,
// the driver and the CLI.
package testkit

import (
	"fmt"
	"strings"

	"codelint/internal/diag"
	"codelint/internal/source"
)

// CheckDiagnostics verifies the aggregation invariants on ds for text:
//  1. positions are >= 1 and address a byte of text (or its end)
//  2. diagnostics are sorted by (line, column)
//  3. no two diagnostics share (line, column, rule)
func CheckDiagnostics(text string, ds []diag.Diagnostic) error {
	ix := source.NewIndex(text)
	type key struct {
		line, col int
		rule      string
	}
	seen := make(map[key]int, len(ds))
	for i, d := range ds {
		if d.Line < 1 || d.Column < 1 {
			return fmt.Errorf("diag %d (%s) at %d:%d: position below 1", i, d.RuleID, d.Line, d.Column)
		}
		if _, ok := ix.Offset(d.Position()); !ok {
			return fmt.Errorf("diag %d (%s) at %s: outside of text", i, d.RuleID, d.Position())
		}
		if i > 0 && d.Position().Less(ds[i-1].Position()) {
			return fmt.Errorf("diag %d at %s sorts before diag %d at %s", i, d.Position(), i-1, ds[i-1].Position())
		}
		k := key{d.Line, d.Column, d.RuleID}
		if j, dup := seen[k]; dup {
			return fmt.Errorf("diag %d duplicates diag %d: %s", i, j, d)
		}
		seen[k] = i
	}
	return nil
}

// CheckSeverities verifies that every diagnostic carries its rule's
// registered severity.
func CheckSeverities(ds []diag.Diagnostic, resolve diag.SeverityResolver) error {
	for i, d := range ds {
		sev, ok := resolve(d.RuleID)
		if !ok {
			return fmt.Errorf("diag %d: unknown rule %q", i, d.RuleID)
		}
		if sev != d.Severity {
			return fmt.Errorf("diag %d (%s): severity %s, registered %s", i, d.RuleID, d.Severity, sev)
		}
	}
	return nil
}

// CheckSuggestions verifies that hints are unique, non-empty and in order of
// first occurrence in ds.
func CheckSuggestions(ds []diag.Diagnostic, hints []string) error {
	var want []string
	seen := make(map[string]bool)
	for _, d := range ds {
		if d.Suggestion != "" && !seen[d.Suggestion] {
			seen[d.Suggestion] = true
			want = append(want, d.Suggestion)
		}
	}
	if strings.Join(want, "\x00") != strings.Join(hints, "\x00") {
		return fmt.Errorf("suggestions %q, want %q", hints, want)
	}
	return nil
}

// CheckScore verifies score = max(0, 100 - penalty) over the registered severities.
func CheckScore(ds []diag.Diagnostic, resolve diag.SeverityResolver, score int) error {
	want := max(0, 100-diag.Count(ds, resolve).Penalty())
	if score != want || score < 0 || score > 100 {
		return fmt.Errorf("score %d, want %d", score, want)
	}
	return nil
}
