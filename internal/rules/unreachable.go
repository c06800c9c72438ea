package rules

import (
	"regexp"
	"strings"

	"codelint/internal/diag"
)

var reReturnStatement = regexp.MustCompile(`^return\b`)

func unreachableCodeRule() Rule {
	return Rule{
		ID:         UnreachableCode,
		Severity:   diag.SevWarning,
		Summary:    "Unreachable code after return statement",
		Suggestion: "Remove code after return or restructure your logic",
		Check:      checkUnreachableCode,
	}
}

// checkUnreachableCode flags the first statement after a return that sits in
// the same block. Both the return and the braces are read from the sanitized
// lines; the scan stops as soon as the enclosing block closes.
func checkUnreachableCode(u *Unit, r *Reporter) {
	for i := range u.Lines {
		trimmed := strings.TrimSpace(lineAt(u.SanitizedLines, i))
		if !reReturnStatement.MatchString(trimmed) || strings.HasSuffix(trimmed, "{") {
			continue
		}
		if k, ok := firstStatementAfter(u, i); ok {
			r.At(k+1, 1, "Unreachable code after return statement", "Remove code after return or restructure your logic")
		}
	}
}

func firstStatementAfter(u *Unit, returnLine int) (int, bool) {
	depth := 0
	for k := returnLine + 1; k < len(u.Lines); k++ {
		clean := strings.TrimSpace(lineAt(u.SanitizedLines, k))
		if clean == "" { // пустая строка или только комментарий
			continue
		}
		for i := 0; i < len(clean); i++ {
			switch clean[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth < 0 {
					return 0, false
				}
			}
		}
		if depth == 0 {
			return k, true
		}
	}
	return 0, false
}
