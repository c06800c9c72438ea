package dialect

import "regexp"

type patternSignal struct {
	re      *regexp.Regexp
	dialect Kind
	score   int
	reason  string
}

// Multi-token shapes that keywords alone miss. Patterns run on sanitized
// text; line-anchored ones use (?m).
var patternSignals = []patternSignal{
	{regexp.MustCompile(`(?m)^\s*#include\s*<\w+\.h>`), C, 4, "C header include"},
	{regexp.MustCompile(`(?m)^\s*#include\s*<\w+>`), CPP, 5, "C++ standard header include"},
	{regexp.MustCompile(`\w+::\w+`), CPP, 3, "scope resolution `::`"},
	{regexp.MustCompile(`<<\s*\w`), CPP, 1, "stream insertion `<<`"},
	{regexp.MustCompile(`\bpublic\s+static\s+void\s+main\b`), Java, 8, "java entry point"},
	{regexp.MustCompile(`\bSystem\.out\.print`), Java, 4, "System.out"},
	{regexp.MustCompile(`=>`), JavaScript, 2, "arrow function"},
	{regexp.MustCompile(`\bconsole\.log\(`), JavaScript, 2, "console.log"},
	{regexp.MustCompile(`\)\s*:\s*(?:number|string|boolean|void|any)\b`), TypeScript, 6, "return type annotation"},
	{regexp.MustCompile(`\b\w+\s*:\s*(?:number|string|boolean|any)\b`), TypeScript, 3, "type annotation"},
	{regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\([^)]*\)\s*:`), Python, 6, "python def"},
	{regexp.MustCompile(`(?m)^\s*(?:if|for|while|elif|else)\b[^{;]*:\s*$`), Python, 3, "colon-terminated block"},
	{regexp.MustCompile(`(?m)^\s*from\s+\w+(?:\.\w+)*\s+import\b`), Python, 5, "from-import"},
	{regexp.MustCompile(`:=`), Go, 4, "short variable declaration `:=`"},
	{regexp.MustCompile(`(?m)^\s*package\s+\w+\s*$`), Go, 5, "go package clause"},
	{regexp.MustCompile(`\bfmt\.Print`), Go, 4, "fmt.Print"},
}

// RecordPatterns adds evidence for multi-token shapes.
func RecordPatterns(e *Evidence, text string) {
	for _, sig := range patternSignals {
		for _, m := range sig.re.FindAllStringIndex(text, -1) {
			e.Add(Hint{Dialect: sig.dialect, Score: sig.score, Reason: sig.reason, Offset: m[0]})
		}
	}
}
