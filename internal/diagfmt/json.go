package diagfmt

import (
	"encoding/json"
	"io"

	"codelint/internal/diag"
	"codelint/internal/driver"
	"codelint/internal/engine"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Rule       string `json:"rule"`
	Severity   string `json:"severity"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// FileJSON is the outcome for one file.
type FileJSON struct {
	Path        string           `json:"path"`
	Error       string           `json:"error,omitempty"`
	Cached      bool             `json:"cached,omitempty"`
	Score       *int             `json:"score,omitempty"`
	Grade       engine.Grade     `json:"grade,omitempty"`
	Counts      *diag.Counts     `json:"counts,omitempty"`
	Language    string           `json:"language,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Truncated   int              `json:"truncated,omitempty"`
	Failures    []string         `json:"failures,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	RunID   string         `json:"run_id"`
	Files   []FileJSON     `json:"files"`
	Summary driver.Summary `json:"summary"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(rep *driver.Report, opts JSONOpts) DiagnosticsOutput {
	base := baseDirOf(rep.FileSet)
	out := DiagnosticsOutput{
		RunID:   rep.Summary.RunID,
		Files:   make([]FileJSON, 0, len(rep.Files)),
		Summary: rep.Summary,
	}
	for i := range rep.Files {
		fr := &rep.Files[i]
		fj := FileJSON{
			Path:        displayPath(fr, opts.PathMode, base),
			Cached:      fr.Cached,
			Diagnostics: []DiagnosticJSON{},
		}
		if fr.Err != nil {
			fj.Error = fr.Err.Error()
			out.Files = append(out.Files, fj)
			continue
		}
		res := fr.Result
		score, counts := res.Score, res.Counts
		fj.Score, fj.Counts = &score, &counts
		fj.Grade = res.Grade
		fj.Language = res.Language
		fj.Suggestions = res.Suggestions
		fj.Truncated = res.Truncated
		for _, d := range res.Diagnostics {
			fj.Diagnostics = append(fj.Diagnostics, DiagnosticJSON{
				Rule:       d.RuleID,
				Severity:   d.Severity.String(),
				Line:       d.Line,
				Column:     d.Column,
				Message:    d.Message,
				Suggestion: d.Suggestion,
			})
		}
		for _, f := range res.Failures {
			fj.Failures = append(fj.Failures, f.Error())
		}
		out.Files = append(out.Files, fj)
	}
	return out
}

// JSON writes rep as one JSON document.
func JSON(w io.Writer, rep *driver.Report, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	if opts.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(BuildDiagnosticsOutput(rep, opts))
}
