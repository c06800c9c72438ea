// Package engine runs the rule registry over one text and turns the findings
// into a result: aggregated diagnostics, a score, remediation hints.
//
// Analysis is a pure function of the text and the registry. Rules run in
// parallel over a shared read-only unit; the aggregation step restores a
// deterministic order, so the worker count never changes the output.
//
//	res, err := engine.Analyze(text)
//	if errors.Is(err, engine.ErrInvalidInput) { ... }
package engine
