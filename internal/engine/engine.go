package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"codelint/internal/dialect"
	"codelint/internal/diag"
	"codelint/internal/observ"
	"codelint/internal/rules"
	"codelint/internal/trace"
)

// Options configure an Engine. The zero value is usable.
type Options struct {
	Registry       *rules.Registry // rules.Default() when nil
	Jobs           int             // parallel rules; <= 0 means GOMAXPROCS
	Budget         time.Duration   // per-call wall clock; 0 means unlimited
	Logger         hclog.Logger
	Tracer         trace.Tracer // falls back to the tracer in ctx
	MaxDiagnostics int          // 0 means unlimited
}

// Engine analyzes texts with a fixed registry. It holds no per-call state and
// is safe for concurrent use.
type Engine struct {
	reg    *rules.Registry
	jobs   int
	budget time.Duration
	log    hclog.Logger
	tracer trace.Tracer
	limit  int
}

func New(opts Options) *Engine {
	e := &Engine{
		reg:    opts.Registry,
		jobs:   opts.Jobs,
		budget: opts.Budget,
		log:    opts.Logger,
		tracer: opts.Tracer,
		limit:  opts.MaxDiagnostics,
	}
	if e.reg == nil {
		e.reg = rules.Default()
	}
	if e.jobs <= 0 {
		e.jobs = runtime.GOMAXPROCS(0)
	}
	if e.log == nil {
		e.log = hclog.NewNullLogger()
	}
	return e
}

// Logger returns the engine's logger; never nil.
func (e *Engine) Logger() hclog.Logger { return e.log }

// WithLogger returns a copy of e that logs to l. The copy shares the
// registry and settings, so its Fingerprint is unchanged.
func (e *Engine) WithLogger(l hclog.Logger) *Engine {
	c := *e
	if l == nil {
		l = hclog.NewNullLogger()
	}
	c.log = l
	return &c
}

// Registry returns the rules this engine runs.
func (e *Engine) Registry() *rules.Registry { return e.reg }

// Fingerprint identifies everything that shapes a Result besides the text:
// the rule set and the diagnostic limit. Result caches key on it.
func (e *Engine) Fingerprint() string {
	return e.reg.Fingerprint() + "/max=" + strconv.Itoa(e.limit)
}

// Analyze runs every rule over text. The only errors are ErrInvalidInput,
// ErrBudgetExceeded and a cancelled ctx; a panicking rule is reported in
// Result.Failures instead.
func (e *Engine) Analyze(ctx context.Context, text string) (*Result, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}
	if e.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.budget)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, e.interrupted(ctx, err)
	}

	tr := e.tracer
	if tr == nil {
		tr = trace.FromContext(ctx)
	}
	span := trace.Begin(tr, trace.ScopeFile, "analyze", trace.ParentFromContext(ctx))
	ctx = trace.WithParent(ctx, span)

	// rules cannot be interrupted mid-check, so the call returns on budget
	// expiry while the workers finish in the background
	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := e.analyze(ctx, tr, text)
		done <- outcome{res, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			span.End("interrupted")
			return nil, e.interrupted(ctx, out.err)
		}
		span.WithExtra("diagnostics", strconv.Itoa(len(out.res.Diagnostics))).
			WithExtra("score", strconv.Itoa(out.res.Score)).
			End("")
		return out.res, nil
	case <-ctx.Done():
		trace.Point(tr, trace.ScopeFile, "budget exceeded", e.budget.String(), span.ID())
		span.End("interrupted")
		return nil, e.interrupted(ctx, ctx.Err())
	}
}

func (e *Engine) interrupted(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		e.log.Warn("analysis budget exceeded", "budget", e.budget)
		return fmt.Errorf("%w: %w", ErrBudgetExceeded, context.DeadlineExceeded)
	}
	return err
}

func (e *Engine) analyze(ctx context.Context, tr trace.Tracer, text string) (*Result, error) {
	timer := observ.NewTimer()

	idx := timer.Begin("prepare")
	unit := rules.NewUnit(text)
	timer.End(idx, "")

	all := e.reg.All()
	outs := make([][]diag.Diagnostic, len(all))
	failures := make([]*RuleFailure, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(e.jobs, max(1, len(all))))
	parent := trace.ParentFromContext(ctx)
	for i := range all {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			rule := &all[i]
			span := trace.Begin(tr, trace.ScopeRule, "rule:"+rule.ID, parent)
			start := time.Now()
			out, err := runRule(rule, unit)
			dur := time.Since(start)
			if err != nil {
				failures[i] = &RuleFailure{RuleID: rule.ID, Err: err}
				e.log.Error("rule failed", "rule", rule.ID, "error", err)
				trace.Point(tr, trace.ScopeRule, "rule failed", rule.ID+": "+err.Error(), span.ID())
				span.End("failed")
			} else {
				span.WithExtra("diagnostics", strconv.Itoa(len(out))).End("")
			}
			outs[i] = out
			note := ""
			if len(out) > 0 {
				note = fmt.Sprintf("%d diagnostics", len(out))
			}
			timer.Record("rule:"+rule.ID, dur, note)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx = timer.Begin("aggregate")
	res := e.summarize(diag.Aggregate(outs...))
	res.Language = dialect.Classify(unit.Sanitized).Kind.String()
	for _, f := range failures {
		if f != nil {
			res.Failures = append(res.Failures, *f)
		}
	}
	timer.End(idx, "")
	res.Timings = timer.Report()
	return res, nil
}

// runRule isolates a rule: a panic becomes an error and no diagnostics.
func runRule(rule *rules.Rule, u *rules.Unit) (out []diag.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return rules.Run(rule, u), nil
}

// summarize derives score, counts and hints from the full list, then applies
// the diagnostic limit.
func (e *Engine) summarize(ds []diag.Diagnostic) *Result {
	counts := diag.Count(ds, e.reg.Severity)
	score := scoreFromCounts(counts)
	res := &Result{
		Diagnostics: ds,
		Score:       score,
		Grade:       GradeOf(score),
		Counts:      counts,
		Suggestions: SuggestionsOf(ds),
	}
	if e.limit > 0 && len(ds) > e.limit {
		res.Truncated = len(ds) - e.limit
		res.Diagnostics = ds[:e.limit:e.limit]
	}
	return res
}

// Score is Analyze reduced to the score.
func (e *Engine) Score(ctx context.Context, text string) (int, error) {
	res, err := e.Analyze(ctx, text)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Suggestions is Analyze reduced to the remediation hints.
func (e *Engine) Suggestions(ctx context.Context, text string) ([]string, error) {
	res, err := e.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return res.Suggestions, nil
}

var defaultEngine = New(Options{})

// Analyze runs the built-in rules over text.
func Analyze(text string) (*Result, error) {
	return defaultEngine.Analyze(context.Background(), text)
}

// Score returns the quality score of text in [0, 100].
func Score(text string) (int, error) {
	return defaultEngine.Score(context.Background(), text)
}

// Suggestions returns the distinct remediation hints for text.
func Suggestions(text string) ([]string, error) {
	return defaultEngine.Suggestions(context.Background(), text)
}
