package rules

import (
	"regexp"

	"codelint/internal/diag"
)

// The loop variable must be the same in the init and the condition; RE2 has
// no backreferences, so both are captured and compared. The keyword needs
// trailing space, otherwise names like letter split into let + ter.
var reZeroBasedInclusiveLoop = regexp.MustCompile(`for\s*\(\s*(?:(?:int|let|const|var)\s+)?(\w+)\s*=\s*0\s*;\s*(\w+)\s*<=\s*\w+\.(?:length|size)`)

func offByOneLoopRule() Rule {
	return Rule{
		ID:         OffByOneLoop,
		Severity:   diag.SevWarning,
		Summary:    "Potential off-by-one error in loop",
		Suggestion: "Check loop bounds: typically use '<' with length/size or '<=' with max value",
		Check:      checkOffByOneLoop,
	}
}

func checkOffByOneLoop(u *Unit, r *Reporter) {
	for _, m := range reZeroBasedInclusiveLoop.FindAllStringSubmatchIndex(u.Text, -1) {
		init, cond := u.Text[m[2]:m[3]], u.Text[m[4]:m[5]]
		if init != cond {
			continue
		}
		r.AtOffset(m[0], "Potential off-by-one error: loop may iterate beyond array bounds", "Use '<' instead of '<=' when comparing with length/size")
	}
}
