package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelint/internal/cache"
	"codelint/internal/diag"
	"codelint/internal/engine"
	"codelint/internal/rules"
	"codelint/internal/testkit"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

var defaultExts = []string{".c", ".js"}

func TestCollectIsSortedAndFiltered(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.c":                 "int b;\n",
		"a.c":                 "int a;\n",
		"notes.txt":           "hello\n",
		"sub/c.JS":            "let c = 1;\n",
		"vendor/skip.c":       "int s;\n",
		"sub/generated.min.js": "x\n",
	})

	files, err := Collect([]string{root}, defaultExts, []string{"vendor", "*.min.js"})
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"a.c", "b.c", "sub/c.JS"}, rel)
}

func TestCollectKeepsExplicitFilesAndDedups(t *testing.T) {
	root := writeTree(t, map[string]string{"notes.txt": "x\n", "a.c": "int a;\n"})
	txt := filepath.Join(root, "notes.txt")
	a := filepath.Join(root, "a.c")

	files, err := Collect([]string{txt, a, root, StdinPath}, defaultExts, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{StdinPath, a, txt}, files)
}

func TestCollectErrors(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "missing")}, defaultExts, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Collect([]string{t.TempDir()}, defaultExts, nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = Collect([]string{t.TempDir()}, defaultExts, []string{"["})
	assert.Error(t, err)
}

func TestRunAnalyzesEveryFile(t *testing.T) {
	clean := "int main() {\n  return 0;\n}\n"
	broken := "int main() {\n  return 0;\n"
	root := writeTree(t, map[string]string{"clean.c": clean, "broken.c": broken})

	var mu sync.Mutex
	seen := map[string][]Status{}
	sink := SinkFunc(func(evt Event) {
		mu.Lock()
		defer mu.Unlock()
		seen[filepath.Base(evt.File)] = append(seen[filepath.Base(evt.File)], evt.Status)
	})

	rep, err := Run(context.Background(), Request{
		Paths:      []string{root},
		Extensions: defaultExts,
		Jobs:       2,
		Progress:   sink,
	})
	require.NoError(t, err)
	require.Len(t, rep.Files, 2)

	// sorted: broken.c before clean.c
	assert.Equal(t, "broken.c", filepath.Base(rep.Files[0].Path))
	assert.Equal(t, "clean.c", filepath.Base(rep.Files[1].Path))

	brokenRes := rep.Files[0].Result
	require.NotNil(t, brokenRes)
	require.NoError(t, testkit.CheckDiagnostics(broken, brokenRes.Diagnostics))
	assert.True(t, brokenRes.HasErrors())
	assert.Equal(t, engine.MaxScore, rep.Files[1].Result.Score)

	assert.Equal(t, 2, rep.Summary.Files)
	assert.Zero(t, rep.Summary.Failed)
	assert.NotEmpty(t, rep.Summary.RunID)
	assert.Equal(t, brokenRes.Score, rep.Summary.MinScore)
	assert.True(t, rep.HasErrors())

	for name, statuses := range seen {
		assert.Equal(t, []Status{StatusQueued, StatusWorking, StatusDone}, statuses, name)
	}
}

func TestRunMatchesDirectAnalysis(t *testing.T) {
	text := "for (int i = 0; i <= n; i++) {\n  total += arr[i];\n}\n"
	root := writeTree(t, map[string]string{"loop.c": text})

	rep, err := Run(context.Background(), Request{Paths: []string{root}, Extensions: defaultExts})
	require.NoError(t, err)
	direct, err := engine.Analyze(text)
	require.NoError(t, err)
	assert.Equal(t, direct.Diagnostics, rep.Files[0].Result.Diagnostics)
	assert.Equal(t, direct.Score, rep.Files[0].Result.Score)
}

func TestRunNormalizesCRLF(t *testing.T) {
	root := writeTree(t, map[string]string{"crlf.c": "int x = 1;\r\nint y = 2;\r\n"})
	rep, err := Run(context.Background(), Request{Paths: []string{root}, Extensions: defaultExts})
	require.NoError(t, err)
	for _, d := range rep.Files[0].Result.Diagnostics {
		assert.NotEqual(t, rules.TrailingWhitespace, d.RuleID, "CR must not look like trailing whitespace")
	}
}

func TestRunUsesCache(t *testing.T) {
	root := writeTree(t, map[string]string{"a.c": "int a = 1;;\n"})
	c, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	req := Request{Paths: []string{root}, Extensions: defaultExts, Cache: c}

	first, err := Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Files[0].Cached)

	second, err := Run(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Files[0].Cached)
	assert.Equal(t, 1, second.Summary.Cached)
	assert.Equal(t, first.Files[0].Result.Diagnostics, second.Files[0].Result.Diagnostics)
	assert.Equal(t, first.Files[0].Result.Score, second.Files[0].Result.Score)
	assert.NotEqual(t, first.Summary.RunID, second.Summary.RunID)

	// другой набор правил не должен попадать в тот же ключ
	reg, err := rules.Default().Without(rules.MultipleSemicolons)
	require.NoError(t, err)
	req.Engine = engine.New(engine.Options{Registry: reg})
	third, err := Run(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, third.Files[0].Cached)
}

func TestRunRecordsPerFileErrors(t *testing.T) {
	root := writeTree(t, map[string]string{"nul.c": "int a;\x00\n", "ok.c": "int a;\n"})
	rep, err := Run(context.Background(), Request{Paths: []string{root}, Extensions: defaultExts})
	require.NoError(t, err)

	require.Len(t, rep.Files, 2)
	assert.ErrorIs(t, rep.Files[0].Err, engine.ErrInvalidInput)
	assert.Nil(t, rep.Files[0].Result)
	assert.NoError(t, rep.Files[1].Err)
	assert.Equal(t, 1, rep.Summary.Failed)
	assert.True(t, rep.HasErrors())
}

func TestRunReadsStdin(t *testing.T) {
	rep, err := Run(context.Background(), Request{
		Paths: []string{StdinPath},
		Stdin: strings.NewReader("}\n"),
	})
	require.NoError(t, err)
	require.Len(t, rep.Files, 1)
	assert.Equal(t, StdinPath, rep.Files[0].Path)
	assert.Equal(t, "<stdin>", rep.Files[0].File.Path)
	var ids []string
	for _, d := range rep.Files[0].Result.Diagnostics {
		ids = append(ids, d.RuleID)
	}
	assert.Contains(t, ids, rules.MismatchedBraces)
}

func TestRunCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.c": "int a;\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Request{Paths: []string{root}, Extensions: defaultExts})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunTagsEngineLogsWithRunID(t *testing.T) {
	boom := rules.Rule{
		ID:       "boom",
		Severity: diag.SevError,
		Check:    func(*rules.Unit, *rules.Reporter) { panic("broken rule") },
	}
	reg, err := rules.NewRegistry(append(rules.Builtin(), boom)...)
	require.NoError(t, err)

	var buf bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &buf, JSONFormat: true, Level: hclog.Debug})
	root := writeTree(t, map[string]string{"a.c": "int a;\n"})
	rep, err := Run(context.Background(), Request{
		Paths:      []string{root},
		Extensions: defaultExts,
		Engine:     engine.New(engine.Options{Registry: reg, Logger: log}),
	})
	require.NoError(t, err)
	require.Len(t, rep.Files[0].Result.Failures, 1)

	out := buf.String()
	assert.Contains(t, out, "rule failed")
	assert.Contains(t, out, `"run_id":"`+rep.Summary.RunID+`"`)
}
