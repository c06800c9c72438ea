package rules

import (
	"fmt"
	"regexp"
	"strings"

	"codelint/internal/diag"
)

var (
	reTypedFunctionName = regexp.MustCompile(`\b(?:int|float|double|char|bool|long|short|string|void|auto)\s+([a-zA-Z_]\w*)\s*\(`)
	reParameterList     = regexp.MustCompile(`\(([^)]*)\)`)
	reParameterSplit    = regexp.MustCompile(`[\s*&]+`)
	reDeclaration       = regexp.MustCompile(`\b(?:int|float|double|char|bool|long|short|string|auto|let|const|var)\s+([a-zA-Z_]\w*)`)
	reIdentifierUse     = regexp.MustCompile(`\b([a-zA-Z_]\w*)\b`)
	reIdentifierExact   = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
)

// knownNames are keywords and common library names across the dialects the
// engine sees. They are never reported as undeclared.
var knownNames = setOf(
	// control flow
	"if", "else", "for", "while", "do", "switch", "case", "default", "break", "continue",
	"return", "goto", "try", "catch", "finally", "throw", "throws", "new", "delete",
	"typeof", "instanceof", "in", "of", "this", "super", "yield", "await", "async",
	// literals
	"true", "false", "null", "undefined", "NULL", "nullptr", "True", "False", "None",
	// types and qualifiers
	"int", "float", "double", "char", "bool", "boolean", "long", "short", "void", "byte",
	"signed", "unsigned", "string", "auto", "const", "static", "extern", "register",
	"volatile", "inline", "struct", "union", "enum", "typedef", "sizeof", "template",
	"typename", "namespace", "using", "operator", "friend", "virtual", "override",
	"explicit", "mutable", "final", "abstract", "interface", "extends", "implements",
	"package", "import", "export", "from", "as", "let", "var", "function", "class",
	"public", "private", "protected", "include", "define",
	// python
	"def", "lambda", "pass", "elif", "except", "raise", "with", "global", "nonlocal",
	"and", "or", "not", "is", "assert", "self",
	// library names
	"main", "printf", "scanf", "puts", "malloc", "calloc", "realloc", "free", "cout", "cin",
	"cerr", "endl", "std", "vector", "map", "set", "String", "System", "Math", "Integer",
	"Object", "console", "print", "input", "len", "range", "str", "list", "dict",
)

func setOf(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func undeclaredVariableRule() Rule {
	return Rule{
		ID:         UndeclaredVariable,
		Severity:   diag.SevError,
		Summary:    "Variable used without being declared",
		Suggestion: "Declare the variable before using it",
		Check:      checkUndeclaredVariables,
	}
}

// checkUndeclaredVariables is forward-only: a name counts as declared from the
// line of its declaration onwards. Function names and parameter names are
// collected up front from the whole unit.
func checkUndeclaredVariables(u *Unit, r *Reporter) {
	declared := collectSignatureNames(u.Sanitized)

	for i, line := range u.SanitizedLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		for _, m := range reDeclaration.FindAllStringSubmatch(line, -1) {
			declared[m[1]] = struct{}{}
		}

		reported := make(map[string]struct{})
		for _, m := range reIdentifierUse.FindAllStringSubmatchIndex(line, -1) {
			name := line[m[2]:m[3]]
			if _, ok := knownNames[name]; ok {
				continue
			}
			if _, ok := declared[name]; ok {
				continue
			}
			if isMemberAccess(line, m[2]) {
				continue
			}
			if _, dup := reported[name]; dup {
				continue
			}
			reported[name] = struct{}{}
			r.At(i+1, m[2]+1, fmt.Sprintf("Variable '%s' used without declaration", name), "Declare the variable before using it")
		}
	}
}

// collectSignatureNames seeds the declared set with typed function names and
// the last token of every comma-separated item inside parentheses.
func collectSignatureNames(text string) map[string]struct{} {
	declared := make(map[string]struct{})
	for _, m := range reTypedFunctionName.FindAllStringSubmatch(text, -1) {
		declared[m[1]] = struct{}{}
	}
	for _, m := range reParameterList.FindAllStringSubmatch(text, -1) {
		for _, param := range strings.Split(m[1], ",") {
			parts := reParameterSplit.Split(strings.TrimSpace(param), -1)
			name := parts[len(parts)-1]
			if reIdentifierExact.MatchString(name) {
				declared[name] = struct{}{}
			}
		}
	}
	return declared
}

// isMemberAccess reports identifiers written right after '.', "->" or "::".
func isMemberAccess(line string, at int) bool {
	before := strings.TrimRight(line[:at], " \t")
	return strings.HasSuffix(before, ".") ||
		strings.HasSuffix(before, "->") ||
		strings.HasSuffix(before, "::")
}
