package rules

import (
	"regexp"

	"codelint/internal/diag"
)

var emptyBracePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\{\s*\{\s*\}\s*\}`), // {{}}
	regexp.MustCompile(`\{\s*\{`),           // {{
}

func emptyBracesRule() Rule {
	return Rule{
		ID:         EmptyBraces,
		Severity:   diag.SevWarning,
		Summary:    "Empty or meaningless brace block",
		Suggestion: "Remove empty braces or add meaningful code",
		Check:      checkEmptyBraces,
	}
}

// checkEmptyBraces works on the raw text and skips matches that follow an odd
// number of '"' or '\'' characters, i.e. that probably sit inside a literal.
func checkEmptyBraces(u *Unit, r *Reporter) {
	for _, re := range emptyBracePatterns {
		var q quoteParity
		for _, m := range re.FindAllStringIndex(u.Text, -1) {
			if q.advance(u.Text, m[0]) {
				continue
			}
			r.AtOffset(m[0], "Empty or meaningless nested brace block", "Remove unnecessary braces or add meaningful code")
		}
	}
}

// quoteParity counts quotes in text[:off] incrementally; offsets passed to
// advance must not decrease.
type quoteParity struct {
	pos            int
	double, single int
}

// advance moves to off and reports whether an odd number of double or single
// quotes precedes it.
func (q *quoteParity) advance(text string, off int) bool {
	for ; q.pos < off && q.pos < len(text); q.pos++ {
		switch text[q.pos] {
		case '"':
			q.double++
		case '\'':
			q.single++
		}
	}
	return q.double%2 != 0 || q.single%2 != 0
}
