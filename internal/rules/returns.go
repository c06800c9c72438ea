package rules

import (
	"fmt"
	"regexp"
	"strings"

	"codelint/internal/diag"
)

var (
	// C, C++, Java: int name(...) {
	reTypedFunction = regexp.MustCompile(`\b(int|float|double|long|short|char|bool|string|std::string|void)\s+(\w+)\s*\([^)]*\)\s*\{`)
	// TypeScript: function name(...): type {
	reAnnotatedFunction = regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)\s*:\s*(\w+)\s*\{`)
	reReturnKeyword     = regexp.MustCompile(`\breturn\b`)
)

func missingReturnRule() Rule {
	return Rule{
		ID:         MissingReturn,
		Severity:   diag.SevError,
		Summary:    "Function may be missing a return statement",
		Suggestion: "Add a return statement for all code paths",
		Check:      checkMissingReturn,
	}
}

// checkMissingReturn searches the sanitized text, so signatures and return
// keywords inside comments or strings do not count.
func checkMissingReturn(u *Unit, r *Reporter) {
	text := u.Sanitized
	for _, m := range reTypedFunction.FindAllStringSubmatchIndex(text, -1) {
		if text[m[2]:m[3]] == "void" {
			continue
		}
		checkFunctionBody(text, m[0], m[1], text[m[4]:m[5]], r)
	}
	for _, m := range reAnnotatedFunction.FindAllStringSubmatchIndex(text, -1) {
		if strings.HasPrefix(text[m[4]:m[5]], "void") {
			continue
		}
		checkFunctionBody(text, m[0], m[1], text[m[2]:m[3]], r)
	}
}

// checkFunctionBody scans from just after the opening brace to its matching
// closing brace. An unclosed body is treated as empty.
func checkFunctionBody(text string, declStart, bodyStart int, name string, r *Reporter) {
	depth := 1
	bodyEnd := bodyStart
	for i := bodyStart; i < len(text) && depth > 0; i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				bodyEnd = i
			}
		}
	}
	if reReturnKeyword.MatchString(text[bodyStart:bodyEnd]) {
		return
	}
	r.AtOffset(declStart, fmt.Sprintf("Function '%s' may be missing a return statement", name), "Add a return statement for all code paths")
}
