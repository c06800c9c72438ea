package rules

import "strings"

// isCommentOrDirective reports lines the line-based rules ignore: comments,
// block comment continuations and preprocessor directives.
func isCommentOrDirective(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "#")
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
