package rules

import (
	"fmt"
	"regexp"
	"strings"

	"codelint/internal/diag"
)

const (
	minDuplicateLines = 4
	maxDuplicateLines = 15
	// windows starting this close to the first occurrence are overlaps, not copies
	minDuplicateDistance = 3
	minSignificantLength = 5
)

var (
	reIdentifierToken = regexp.MustCompile(`\b[a-zA-Z_]\w*\b`)
	reDigitRun        = regexp.MustCompile(`\d+`)
	reWhitespaceRun   = regexp.MustCompile(`\s+`)
)

type codeWindow struct {
	key        string // normalized content
	start, end int    // 1-based lines
}

func duplicateCodeRule() Rule {
	return Rule{
		ID:         DuplicateCode,
		Severity:   diag.SevInfo,
		Summary:    "Duplicate code block detected",
		Suggestion: "Extract duplicate code into a reusable function",
		Check:      checkDuplicateCode,
	}
}

// checkDuplicateCode compares normalized windows of 4..15 consecutive
// significant lines. Each normalized block is reported once, at the first
// later copy. Windows starting inside an already reported copy are skipped so
// that one copied block yields one diagnostic.
func checkDuplicateCode(u *Unit, r *Reporter) {
	type firstSeen struct {
		line     int
		reported bool
	}
	seen := make(map[string]*firstSeen)
	reportedFrom, reportedTo := 0, -1

	for _, w := range collectWindows(u.Lines) {
		first, ok := seen[w.key]
		if !ok {
			seen[w.key] = &firstSeen{line: w.start}
			continue
		}
		if first.reported || abs(w.start-first.line) <= minDuplicateDistance {
			continue
		}
		if w.start > reportedFrom && w.start <= reportedTo {
			continue
		}
		r.At(w.start, 1, fmt.Sprintf("Duplicate code structure detected (similar to line %d)", first.line), "Extract duplicate code into a reusable function")
		first.reported = true
		if w.start != reportedFrom {
			reportedFrom, reportedTo = w.start, w.end
		} else {
			reportedTo = max(reportedTo, w.end)
		}
	}
}

// collectWindows emits, for every start line, each prefix of at least
// minDuplicateLines significant lines, stopping at the first trivial line
// once a block has begun.
func collectWindows(lines []string) []codeWindow {
	var windows []codeWindow
	for i := 0; i+minDuplicateLines <= len(lines); i++ {
		var block []string
		start := i
		for j := i; j < min(i+maxDuplicateLines, len(lines)); j++ {
			trimmed := strings.TrimSpace(lines[j])
			switch {
			case isSignificantLine(trimmed):
				block = append(block, trimmed)
				if len(block) >= minDuplicateLines {
					windows = append(windows, codeWindow{
						key:   normalizeBlock(block),
						start: start + 1,
						end:   j + 1,
					})
				}
			case len(block) > 0:
				j = len(lines) // блок прерван
			default:
				start = j + 1
			}
		}
	}
	return windows
}

func isSignificantLine(trimmed string) bool {
	return len(trimmed) > minSignificantLength &&
		!strings.HasPrefix(trimmed, "//") &&
		!strings.HasPrefix(trimmed, "/*") &&
		!strings.HasPrefix(trimmed, "*")
}

// normalizeBlock replaces identifiers with VAR and digit runs with NUM and
// collapses whitespace, so renamed copies compare equal.
func normalizeBlock(block []string) string {
	s := strings.Join(block, "\n")
	s = reIdentifierToken.ReplaceAllString(s, "VAR")
	s = reDigitRun.ReplaceAllString(s, "NUM")
	return reWhitespaceRun.ReplaceAllString(s, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
