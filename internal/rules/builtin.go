package rules

import "fmt"

// Rule identifiers.
const (
	MultipleSemicolons    = "multiple-semicolons"
	EmptyBraces           = "empty-braces"
	MismatchedBraces      = "mismatched-braces"
	MismatchedParentheses = "mismatched-parentheses"
	MismatchedBrackets    = "mismatched-brackets"
	IncompleteExpression  = "incomplete-expression"
	OffByOneLoop          = "off-by-one-loop"
	MissingReturn         = "missing-return"
	DuplicateCode         = "duplicate-code"
	EmptyCatch            = "empty-catch"
	UnreachableCode       = "unreachable-code"
	UndeclaredVariable    = "undeclared-variable"
	MissingSemicolon      = "missing-semicolon"
	TrailingWhitespace    = "trailing-whitespace"
)

var defaultRegistry = mustRegistry(Builtin()...)

// Builtin returns the built-in rules in their canonical order.
func Builtin() []Rule {
	return []Rule{
		multipleSemicolonsRule(),
		emptyBracesRule(),
		delimiterRule(MismatchedBraces, braces),
		delimiterRule(MismatchedParentheses, parentheses),
		delimiterRule(MismatchedBrackets, brackets),
		incompleteExpressionRule(),
		offByOneLoopRule(),
		missingReturnRule(),
		duplicateCodeRule(),
		emptyCatchRule(),
		unreachableCodeRule(),
		undeclaredVariableRule(),
		missingSemicolonRule(),
		trailingWhitespaceRule(),
	}
}

// Default returns the shared registry of built-in rules. Registries are
// immutable, so sharing it is safe.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(rs ...Rule) *Registry {
	reg, err := NewRegistry(rs...)
	if err != nil {
		panic(fmt.Errorf("built-in rules: %w", err))
	}
	return reg
}
