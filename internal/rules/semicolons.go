package rules

import (
	"regexp"

	"codelint/internal/diag"
)

var reSemicolonRun = regexp.MustCompile(`;{2,}`)

func multipleSemicolonsRule() Rule {
	return Rule{
		ID:         MultipleSemicolons,
		Severity:   diag.SevError,
		Summary:    "Multiple consecutive semicolons",
		Suggestion: "Remove extra semicolons",
		Check:      checkMultipleSemicolons,
	}
}

func checkMultipleSemicolons(u *Unit, r *Reporter) {
	for _, m := range reSemicolonRun.FindAllStringIndex(u.Text, -1) {
		r.AtOffset(m[0], "Multiple consecutive semicolons", "Remove extra semicolons")
	}
}
