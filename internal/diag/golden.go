package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden tests:
//
//	<severity> <rule> <line>:<col> <message>
//
// Input order is kept; callers pass aggregated (sorted) diagnostics.
func FormatGoldenDiagnostics(ds []Diagnostic) string {
	var b strings.Builder
	for i, d := range ds {
		fmt.Fprintf(&b, "%s %s %d:%d %s", d.Severity, d.RuleID, d.Line, d.Column, sanitizeMessage(d.Message))
		if i < len(ds)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatShortDiagnostics renders diagnostics of one file for CLI short output:
//
//	<path>:<line>:<col>: <severity> <rule>: <message>
func FormatShortDiagnostics(path string, ds []Diagnostic) string {
	path = normalizePath(path)
	var b strings.Builder
	for i, d := range ds {
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s", path, d.Line, d.Column, d.Severity, d.RuleID, sanitizeMessage(d.Message))
		if i < len(ds)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
