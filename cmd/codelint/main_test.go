package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelint/internal/diag"
	"codelint/internal/driver"
)

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, exitCode(nil, &stderr))
	assert.Equal(t, 1, exitCode(&exitError{code: 1}, &stderr))
	assert.Empty(t, stderr.String(), "silent exit errors print nothing")

	assert.Equal(t, 2, exitCode(&exitError{code: 2, msg: "too low"}, &stderr))
	assert.Contains(t, stderr.String(), "codelint: too low")

	stderr.Reset()
	assert.Equal(t, 1, exitCode(errors.New("boom"), &stderr))
	assert.Equal(t, "codelint: boom\n", stderr.String())
}

func TestCheckOutcome(t *testing.T) {
	clean := &driver.Report{Summary: driver.Summary{Files: 1, MinScore: 95}}
	assert.NoError(t, checkOutcome(clean, 0))
	assert.NoError(t, checkOutcome(clean, 90))

	var ee *exitError
	require.ErrorAs(t, checkOutcome(clean, 96), &ee)
	assert.Equal(t, 2, ee.code)

	withErrors := &driver.Report{Summary: driver.Summary{Files: 1, MinScore: 10, Counts: diag.Counts{Errors: 1}}}
	require.ErrorAs(t, checkOutcome(withErrors, 50), &ee)
	assert.Equal(t, 1, ee.code, "errors win over the score threshold")

	failed := &driver.Report{Summary: driver.Summary{Files: 1, Failed: 1}}
	require.ErrorAs(t, checkOutcome(failed, 0), &ee)
	assert.Equal(t, 1, ee.code)
}

func TestParseProgressMode(t *testing.T) {
	for in, want := range map[string]progressMode{"": progressAuto, "AUTO": progressAuto, "on": progressOn, " off ": progressOff} {
		got, err := parseProgressMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseProgressMode("sometimes")
	assert.Error(t, err)
}

func TestWantProgress(t *testing.T) {
	assert.True(t, wantProgress(progressOn, false, []string{"."}))
	assert.False(t, wantProgress(progressOn, true, []string{"."}), "quiet wins over --ui on")
	assert.False(t, wantProgress(progressOff, false, []string{"."}))
	assert.False(t, wantProgress(progressAuto, false, []string{"-"}), "stdin-only runs draw nothing")
}

func TestConfigStartDir(t *testing.T) {
	assert.Equal(t, ".", configStartDir([]string{"-"}))
	assert.Equal(t, "src", configStartDir([]string{"-", "src", "lib"}))
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = runCleanups()
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreAndHintsFromStdin(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := execute(t, "}\n", "score", "--color", "off", "-")
	require.NoError(t, err)
	assert.Equal(t, "90\n", out)

	out, err = execute(t, "}\n", "hints", "--color", "off", "-")
	require.NoError(t, err)
	assert.Equal(t, "Remove extra closing brace or add opening brace\n", out)
}

func TestCheckShortFormat(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.c"), []byte("int a = 1;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.c"), []byte("int b = 2;\n}\n"), 0o600))

	out, err := execute(t, "", "check", "--format", "short", "--ui", "off", "--no-cache", "--color", "off", dir)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.code)
	assert.Contains(t, out, "bad.c:2:1: error mismatched-braces: Closing brace without matching opening brace")
	assert.NotContains(t, out, "ok.c")
}
