package rules

import (
	"regexp"

	"codelint/internal/diag"
)

var emptyHandlerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`catch\s*\([^)]*\)\s*\{\s*\}`), // Java, C++, JS
	regexp.MustCompile(`except[^:]*:\s*pass\b`),       // Python
}

func emptyCatchRule() Rule {
	return Rule{
		ID:         EmptyCatch,
		Severity:   diag.SevWarning,
		Summary:    "Empty exception handler detected",
		Suggestion: "Handle errors properly or at least log them",
		Check:      checkEmptyCatch,
	}
}

func checkEmptyCatch(u *Unit, r *Reporter) {
	for _, re := range emptyHandlerPatterns {
		for _, m := range re.FindAllStringIndex(u.Text, -1) {
			r.AtOffset(m[0], "Empty exception handler detected", "Handle errors properly or at least log them")
		}
	}
}
