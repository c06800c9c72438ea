package rules

import (
	"regexp"
	"strings"

	"codelint/internal/diag"
)

var (
	reLoneIdentifier = regexp.MustCompile(`^[a-zA-Z_]\w*;?$`)
	reBinaryNoEffect = regexp.MustCompile(`^[a-zA-Z_]\w*\s*[+\-*/%]\s*[a-zA-Z_]\w*;?$`)
	reResultConsumer = regexp.MustCompile(`return|=|cout|printf|print|System\.out|<<`)

	// statement keywords that legitimately stand alone on a line
	standaloneKeywords = map[string]struct{}{
		"break": {}, "continue": {}, "return": {}, "else": {}, "do": {}, "try": {},
		"finally": {}, "pass": {}, "default": {}, "end": {}, "begin": {},
	}
	declarationHints = []string{"int", "float", "double", "char"}
)

func incompleteExpressionRule() Rule {
	return Rule{
		ID:         IncompleteExpression,
		Severity:   diag.SevError,
		Summary:    "Incomplete or meaningless statement",
		Suggestion: "Complete the statement, assign to variable, or remove if unused",
		Check:      checkIncompleteExpression,
	}
}

func checkIncompleteExpression(u *Unit, r *Reporter) {
	for i, line := range u.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "{" || trimmed == "}" || isCommentOrDirective(trimmed) {
			continue
		}

		if reLoneIdentifier.MatchString(trimmed) && !isStandaloneKeyword(trimmed) {
			prev := strings.TrimSpace(lineAt(u.Lines, i-1))
			next := strings.TrimSpace(lineAt(u.Lines, i+1))
			// declaration continued from the previous line, or a label
			if !containsAny(prev, declarationHints) && !strings.HasPrefix(next, ":") {
				r.At(i+1, 1, "Lone variable statement with no effect", "Remove unused statement or complete the expression")
			}
		}

		if reBinaryNoEffect.MatchString(trimmed) {
			context := strings.Join(u.Lines[max(0, i-2):i+1], "\n")
			if !reResultConsumer.MatchString(context) {
				r.At(i+1, 1, "Expression result is not used or assigned", "Assign the result to a variable, return it, or use it in output")
			}
		}
	}
}

func isStandaloneKeyword(trimmed string) bool {
	_, ok := standaloneKeywords[strings.TrimSuffix(trimmed, ";")]
	return ok
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
