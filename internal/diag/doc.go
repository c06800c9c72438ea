// Package diag defines the diagnostic model shared by rule checkers, the
// engine and the output layer.
//
// # Data model
//
// Diagnostic is an immutable value: rule ID, 1-based line and column, a
// message, a remediation suggestion and a severity. Checkers create
// diagnostics; after aggregation nobody mutates them.
//
// # Aggregation
//
// Bag is the single place where ordering and uniqueness are guaranteed:
//
//   - Add drops an entry when an earlier one already has the same
//     (line, column, rule ID); the first one wins.
//   - Sort is stable and orders by (line, column) only, so diagnostics at the
//     same position keep their insertion order.
//
// Individual checkers therefore never sort or dedupe themselves.
//
// # Scoring inputs
//
// Severity carries the score penalty (error 10, warning 5, info 2). Counts
// tallies diagnostics by a severity resolver supplied by the caller, so the
// engine can resolve severity through the rule registry instead of trusting
// the value stamped on each diagnostic.
//
// Package diag does no IO; rendering lives in internal/diagfmt.
package diag
