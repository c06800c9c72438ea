package engine

import "codelint/internal/diag"

// MaxScore is the score of a text without findings.
const MaxScore = 100

// Grade buckets a score for display.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradeNeedsWork Grade = "Needs Work"
)

// GradeOf maps a score to its grade.
func GradeOf(score int) Grade {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeGood
	case score >= 40:
		return GradeFair
	default:
		return GradeNeedsWork
	}
}

// ScoreOf computes max(0, 100 - penalty) with every severity resolved
// through resolve, never taken from the diagnostic itself.
func ScoreOf(ds []diag.Diagnostic, resolve diag.SeverityResolver) int {
	return scoreFromCounts(diag.Count(ds, resolve))
}

func scoreFromCounts(c diag.Counts) int {
	return max(0, MaxScore-c.Penalty())
}

// SuggestionsOf returns the distinct suggestions of ds in order of first
// occurrence. Empty suggestions are skipped.
func SuggestionsOf(ds []diag.Diagnostic) []string {
	seen := make(map[string]struct{}, len(ds))
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		if d.Suggestion == "" {
			continue
		}
		if _, dup := seen[d.Suggestion]; dup {
			continue
		}
		seen[d.Suggestion] = struct{}{}
		out = append(out, d.Suggestion)
	}
	return out
}
