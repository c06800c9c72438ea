package rules

import (
	"fmt"

	"codelint/internal/diag"
)

type delimiterPair struct {
	open, close byte
	noun        string // brace, parenthesis, bracket
	summary     string
}

var (
	braces      = delimiterPair{'{', '}', "brace", "Mismatched curly braces"}
	parentheses = delimiterPair{'(', ')', "parenthesis", "Mismatched parentheses"}
	brackets    = delimiterPair{'[', ']', "bracket", "Mismatched square brackets"}
)

func delimiterRule(id string, p delimiterPair) Rule {
	return Rule{
		ID:         id,
		Severity:   diag.SevError,
		Summary:    p.summary,
		Suggestion: fmt.Sprintf("Ensure every opening %s has a matching closing %s", p.noun, p.noun),
		Check: func(u *Unit, r *Reporter) {
			checkDelimiters(u, r, p)
		},
	}
}

// checkDelimiters runs a stack match over the sanitized text, so delimiters
// inside literals and comments are invisible. A stray closer is reported
// where it stands and does not disturb later matching; unclosed openers
// produce a single diagnostic at the innermost one.
func checkDelimiters(u *Unit, r *Reporter, p delimiterPair) {
	text := u.Sanitized
	var stack []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case p.open:
			stack = append(stack, i)
		case p.close:
			if len(stack) == 0 {
				r.AtOffset(i,
					fmt.Sprintf("Closing %s without matching opening %s", p.noun, p.noun),
					fmt.Sprintf("Remove extra closing %s or add opening %s", p.noun, p.noun))
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		r.AtOffset(stack[len(stack)-1],
			fmt.Sprintf("Opening %s without matching closing %s", p.noun, p.noun),
			fmt.Sprintf("Add closing %s or remove opening %s", p.noun, p.noun))
	}
}
