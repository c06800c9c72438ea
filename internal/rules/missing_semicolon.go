package rules

import (
	"regexp"
	"strings"

	"codelint/internal/diag"
)

var (
	reControlStatement = regexp.MustCompile(`^(?:if|else|for|while|do|switch)\b`)
	reNeedsSemicolon   = regexp.MustCompile(`^(?:return\s+|[a-zA-Z_]\w*\s*=|[a-zA-Z_]\w*\s*\(|(?:int|float|double|char|bool|let|const|var)\s+[a-zA-Z_])`)
)

func missingSemicolonRule() Rule {
	return Rule{
		ID:         MissingSemicolon,
		Severity:   diag.SevError,
		Summary:    "Missing semicolon at end of statement",
		Suggestion: "Add semicolon at the end of the statement",
		Check:      checkMissingSemicolon,
	}
}

// checkMissingSemicolon works on sanitized lines so that a trailing comment
// or a semicolon inside a string does not decide the outcome. The column
// points at the last non-blank character.
func checkMissingSemicolon(u *Unit, r *Reporter) {
	for i, line := range u.SanitizedLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isCommentOrDirective(trimmed) || !needsSemicolon(trimmed) {
			continue
		}
		if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, ",") {
			continue
		}
		r.At(i+1, len(strings.TrimRight(line, " \t\r")), "Missing semicolon at end of statement", "Add semicolon at the end of the statement")
	}
}

func needsSemicolon(trimmed string) bool {
	switch {
	case trimmed == "{", trimmed == "}":
		return false
	case reControlStatement.MatchString(trimmed):
		return false
	case strings.HasSuffix(trimmed, "{"), strings.HasSuffix(trimmed, "}"):
		return false
	}
	return reNeedsSemicolon.MatchString(trimmed)
}
