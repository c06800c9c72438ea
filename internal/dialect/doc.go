// Package dialect guesses which programming language an analyzed text is
// written in. The guess is informational: it is reported alongside the
// diagnostics and never changes what the rules detect.
package dialect
