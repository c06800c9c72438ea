// Package trace records spans of a codelint run: the run itself, every
// analyzed file and, at debug level, every rule.
//
// Tracers:
//
//   - Nop: zero overhead when disabled
//   - StreamTracer: writes each event immediately (text, ndjson, chrome)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels gate scopes: run < file < debug (rule). Point events, used for
// rule failures, pass from LevelError upward.
//
//	tr, _ := trace.New(trace.Config{Level: trace.LevelFile, Mode: trace.ModeStream})
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(tr, trace.ScopeFile, "file:main.c", trace.ParentFromContext(ctx))
//	defer span.End("")
package trace
