// Package rules holds the heuristic rule checkers and the registry that
// describes them.
//
// A checker is a pure function over a Unit: the raw text, its lines, the
// sanitized copy (literals and comments blanked, same length) and a shared
// line index. Checkers never see each other's output and keep no state
// between calls, so the engine may run them in any order or in parallel.
//
// None of the rules parse a language. They are line and pattern heuristics
// that work on C-like code, JavaScript/TypeScript, Java and Python alike, and
// they are expected to produce false positives on some inputs.
package rules
