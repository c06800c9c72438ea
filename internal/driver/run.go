package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"codelint/internal/cache"
	"codelint/internal/diag"
	"codelint/internal/engine"
	"codelint/internal/source"
	"codelint/internal/trace"
)

// Request describes one multi-file run.
type Request struct {
	Paths      []string
	Extensions []string // used for directories only
	Exclude    []string
	Jobs       int // files in flight; <= 0 means GOMAXPROCS
	BaseDir    string

	Engine   *engine.Engine // engine.New(engine.Options{}) when nil
	Cache    *cache.Cache   // nil disables caching
	Progress ProgressSink
	Logger   hclog.Logger
	Stdin    io.Reader // read when Paths contains "-"
}

// FileResult is the outcome for one file. Exactly one of Result and Err is set.
type FileResult struct {
	Path   string
	File   *source.File // nil when loading failed
	Result *engine.Result
	Err    error
	Cached bool
}

// Summary aggregates a run.
type Summary struct {
	RunID       string        `json:"run_id"`
	Files       int           `json:"files"`
	Cached      int           `json:"cached"`
	Failed      int           `json:"failed"`
	Diagnostics int           `json:"diagnostics"`
	Counts      diag.Counts   `json:"counts"`
	MeanScore   float64       `json:"mean_score"`
	MinScore    int           `json:"min_score"`
	Elapsed     time.Duration `json:"-"`
	Stats       string        `json:"-"`
}

// Report is everything Run produces.
type Report struct {
	Files   []FileResult
	FileSet *source.FileSet
	Summary Summary
}

// Run analyzes every file named by req. Per-file failures (unreadable file,
// invalid input, budget overrun) land in FileResult.Err; only walking errors
// and a cancelled ctx fail the run.
func Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := req.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	log = log.With("run_id", runID)
	eng := req.Engine
	if eng == nil {
		eng = engine.New(engine.Options{Logger: log.Named("engine")})
	} else {
		// rule failures must carry the run id too
		eng = eng.WithLogger(eng.Logger().With("run_id", runID))
	}

	paths, err := Collect(req.Paths, req.Extensions, req.Exclude)
	if err != nil {
		return nil, err
	}

	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeRun, "check", trace.ParentFromContext(ctx)).
		WithExtra("run_id", runID).
		WithExtra("files", strconv.Itoa(len(paths)))
	ctx = trace.WithParent(ctx, span)

	for _, p := range paths {
		emit(req.Progress, Event{File: p, Status: StatusQueued})
	}

	// FileSet не потокобезопасен, поэтому загрузка идёт до пула
	fileSet := source.NewFileSetWithBase(req.BaseDir)
	files := make([]*source.File, len(paths))
	loadErrors := make([]error, len(paths))
	for i, p := range paths {
		files[i], loadErrors[i] = load(fileSet, p, req.Stdin)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	salt := eng.Fingerprint()
	results := make([]FileResult, len(paths))
	var metrics runMetrics

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, p := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			metrics.workersActive.Add(1)
			defer metrics.workersActive.Add(-1)

			began := time.Now()
			if loadErrors[i] != nil {
				results[i] = FileResult{Path: p, Err: loadErrors[i]}
				metrics.workersErrors.Add(1)
				log.Warn("cannot load file", "path", p, "error", loadErrors[i])
				emit(req.Progress, Event{File: p, Status: StatusError, Err: loadErrors[i]})
				return nil
			}
			emit(req.Progress, Event{File: p, Status: StatusWorking})
			fr, err := analyzeFile(gctx, eng, req.Cache, salt, files[i], &metrics, log)
			if err != nil {
				return err
			}
			fr.Path = p
			results[i] = fr
			metrics.workersCompleted.Add(1)

			evt := Event{File: p, Status: StatusDone, Cached: fr.Cached, Elapsed: time.Since(began)}
			if fr.Err != nil {
				metrics.workersErrors.Add(1)
				evt.Status, evt.Err = StatusError, fr.Err
			}
			emit(req.Progress, evt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("interrupted")
		return nil, err
	}

	summary := summarize(results)
	summary.RunID = runID
	summary.Elapsed = time.Since(start)
	summary.Stats = metrics.String()
	span.WithExtra("diagnostics", strconv.Itoa(summary.Diagnostics)).End(summary.Stats)
	log.Debug("run finished", "files", summary.Files, "failed", summary.Failed,
		"elapsed", summary.Elapsed, "stats", summary.Stats)

	return &Report{Files: results, FileSet: fileSet, Summary: summary}, nil
}

func load(fileSet *source.FileSet, path string, stdin io.Reader) (*source.File, error) {
	if path != StdinPath {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, err
		}
		return fileSet.Get(id), nil
	}
	if stdin == nil {
		return nil, errors.New("stdin requested but no reader given")
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	content, flags, err := source.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	id := fileSet.Add("<stdin>", content, flags|source.FileVirtual)
	return fileSet.Get(id), nil
}

// analyzeFile returns a non-nil error only when ctx was cancelled; every
// other failure is recorded in the FileResult.
func analyzeFile(
	ctx context.Context,
	eng *engine.Engine,
	c *cache.Cache,
	salt string,
	file *source.File,
	metrics *runMetrics,
	log hclog.Logger,
) (FileResult, error) {
	fr := FileResult{File: file}
	key := cache.Key(file.Content, salt)
	if c != nil {
		payload, ok, err := c.Get(key)
		switch {
		case err != nil:
			log.Warn("cache read failed", "path", file.Path, "error", err)
		case ok:
			metrics.cacheHits.Add(1)
			fr.Result, fr.Cached = payload.Result(), true
			return fr, nil
		}
		metrics.cacheMisses.Add(1)
	}

	res, err := eng.Analyze(ctx, file.Content)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fr, err
		}
		fr.Err = err
		return fr, nil
	}
	fr.Result = res

	if payload, ok := cache.FromResult(res); ok && c != nil {
		if err := c.Put(key, payload); err != nil {
			log.Warn("cache write failed", "path", file.Path, "error", err)
		} else {
			metrics.cacheWrites.Add(1)
		}
	}
	return fr, nil
}

func summarize(results []FileResult) Summary {
	s := Summary{Files: len(results), MinScore: engine.MaxScore}
	scored, total := 0, 0
	for _, fr := range results {
		if fr.Err != nil || fr.Result == nil {
			s.Failed++
			continue
		}
		if fr.Cached {
			s.Cached++
		}
		res := fr.Result
		s.Diagnostics += len(res.Diagnostics) + res.Truncated
		s.Counts.Errors += res.Counts.Errors
		s.Counts.Warnings += res.Counts.Warnings
		s.Counts.Infos += res.Counts.Infos
		s.MinScore = min(s.MinScore, res.Score)
		total += res.Score
		scored++
	}
	if scored > 0 {
		s.MeanScore = float64(total) / float64(scored)
	} else {
		s.MinScore = 0
	}
	return s
}

// HasErrors reports whether any file failed or has error diagnostics.
func (r *Report) HasErrors() bool {
	return r.Summary.Failed > 0 || r.Summary.Counts.Errors > 0
}
