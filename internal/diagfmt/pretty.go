package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"codelint/internal/diag"
	"codelint/internal/dialect"
	"codelint/internal/driver"
	"codelint/internal/engine"
	"codelint/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	path, gutter    *color.Color
	caret, help     *color.Color
	good, bad       *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		help:   color.New(color.FgCyan),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.help, p.good, p.bad} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders every file of rep for a terminal:
//
//	<path>:<line>:<col>: <severity> <rule>: <message>
//	   3 | for (int i = 0; i <= n; i++) {
//	     |   ^
//	     = help: <suggestion>
//
// followed by an optional score footer per file and a run summary.
func Pretty(w io.Writer, rep *driver.Report, opts PrettyOpts) error {
	pw := &prettyWriter{w: w, pal: newPalette(opts.Color), opts: opts, base: baseDirOf(rep.FileSet)}
	for i := range rep.Files {
		if opts.Quiet {
			break
		}
		pw.file(&rep.Files[i])
	}
	pw.summary(&rep.Summary)
	return pw.err
}

type prettyWriter struct {
	w    io.Writer
	pal  *palette
	opts PrettyOpts
	base string
	err  error
}

func (pw *prettyWriter) printf(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func (pw *prettyWriter) file(fr *driver.FileResult) {
	path := displayPath(fr, pw.opts.PathMode, pw.base)
	if fr.Err != nil {
		pw.printf("%s: %s %s\n", pw.pal.path.Sprint(path), pw.pal.err.Sprint("error:"), fr.Err)
		return
	}
	res := fr.Result
	gutter := len(strconv.Itoa(maxLine(res.Diagnostics)))
	for _, d := range res.Diagnostics {
		pw.diagnostic(path, fr.File, d, gutter)
	}
	if res.Truncated > 0 {
		pw.printf("%s: %d more diagnostics not shown\n", pw.pal.path.Sprint(path), res.Truncated)
	}
	for _, f := range res.Failures {
		pw.printf("%s: %s rule %s failed: %v\n", pw.pal.path.Sprint(path), pw.pal.err.Sprint("internal:"), f.RuleID, f.Err)
	}
	if pw.opts.ShowNotes {
		if note := dialect.Note(dialect.Classification{Kind: dialect.ParseKind(res.Language)}); note != "" && len(res.Diagnostics) > 0 {
			pw.printf("%s: note: %s\n", pw.pal.path.Sprint(path), note)
		}
	}
	if pw.opts.ShowScore {
		pw.footer(path, res)
	}
}

func (pw *prettyWriter) diagnostic(path string, file *source.File, d diag.Diagnostic, gutter int) {
	sev := pw.pal.severity(d.Severity)
	pw.printf("%s: %s %s: %s\n",
		pw.pal.path.Sprintf("%s:%d:%d", path, d.Line, d.Column),
		sev.Sprint(d.Severity.String()),
		sev.Sprint(d.RuleID),
		d.Message)

	pad := strings.Repeat(" ", gutter)
	if file != nil {
		line := file.Line(d.Line)
		shown := line
		if pw.opts.Width > 0 && runewidth.StringWidth(line) > pw.opts.Width &&
			caretWidth(line, d.Column) < pw.opts.Width-3 {
			shown = runewidth.Truncate(line, pw.opts.Width, "...")
		}
		pw.printf("%s %s %s\n", pw.pal.gutter.Sprintf("%*d", gutter, d.Line), pw.pal.gutter.Sprint("|"), shown)
		pw.printf("%s %s %s%s\n", pad, pw.pal.gutter.Sprint("|"), caretPadding(line, d.Column), pw.pal.caret.Sprint("^"))
	}
	if d.Suggestion != "" {
		pw.printf("%s %s %s %s\n", pad, pw.pal.gutter.Sprint("="), pw.pal.help.Sprint("help:"), d.Suggestion)
	}
}

func (pw *prettyWriter) footer(path string, res *engine.Result) {
	scoreColor := pw.pal.good
	if res.Score < 60 {
		scoreColor = pw.pal.bad
	}
	pw.printf("%s: score %s (%s) - %s\n",
		pw.pal.path.Sprint(path),
		scoreColor.Sprintf("%d/%d", res.Score, engine.MaxScore),
		res.Grade,
		countsPhrase(res.Counts))
}

func (pw *prettyWriter) summary(s *driver.Summary) {
	if s.Files == 0 {
		return
	}
	pw.printf("\n%d file(s) checked: %s", s.Files, countsPhrase(s.Counts))
	if s.Failed > 0 {
		pw.printf(", %s", pw.pal.err.Sprintf("%d failed", s.Failed))
	}
	if s.Cached > 0 {
		pw.printf(", %d from cache", s.Cached)
	}
	if s.Files > s.Failed {
		pw.printf("; mean score %.1f, lowest %d", s.MeanScore, s.MinScore)
	}
	pw.printf("\n")
}

func countsPhrase(c diag.Counts) string {
	return fmt.Sprintf("%s, %s, %s",
		plural(c.Errors, "error"), plural(c.Warnings, "warning"), plural(c.Infos, "info"))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

func maxLine(ds []diag.Diagnostic) int {
	m := 1
	for _, d := range ds {
		m = max(m, d.Line)
	}
	return m
}

// caretPadding mirrors the line prefix before the byte column: tabs stay
// tabs, every other rune becomes spaces of its display width.
func caretPadding(line string, col int) string {
	prefix := line[:min(max(col-1, 0), len(line))]
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func caretWidth(line string, col int) int {
	return runewidth.StringWidth(line[:min(max(col-1, 0), len(line))])
}
