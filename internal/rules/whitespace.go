package rules

import (
	"strings"
	"unicode"

	"codelint/internal/diag"
)

func trailingWhitespaceRule() Rule {
	return Rule{
		ID:         TrailingWhitespace,
		Severity:   diag.SevInfo,
		Summary:    "Trailing whitespace at end of line",
		Suggestion: "Remove trailing whitespace for cleaner code",
		Check:      checkTrailingWhitespace,
	}
}

func checkTrailingWhitespace(u *Unit, r *Reporter) {
	for i, line := range u.Lines {
		body := strings.TrimRightFunc(line, unicode.IsSpace)
		if body == "" || len(body) == len(line) {
			continue
		}
		r.At(i+1, len(body)+1, "Trailing whitespace at end of line", "Remove trailing whitespace for cleaner code")
	}
}
