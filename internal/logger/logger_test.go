package logger

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]hclog.Level{
		"trace": hclog.Trace,
		"DEBUG": hclog.Debug,
		"Info":  hclog.Info,
		"warn":  hclog.Warn,
		"":      hclog.Warn,
		"error": hclog.Error,
		"off":   hclog.Off,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestEnvOverridesConfiguredLevel(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	var buf bytes.Buffer
	l := New(Options{Level: "error", Output: &buf})
	l.Debug("rule finished", "rule", "missing-return")
	assert.Contains(t, buf.String(), "rule finished")
	assert.Contains(t, buf.String(), "rule=missing-return")
}

func TestUnknownLevelWarns(t *testing.T) {
	t.Setenv(EnvLevel, "")
	var buf bytes.Buffer
	l := New(Options{Level: "chatty", Output: &buf})
	assert.Contains(t, buf.String(), "unrecognized log level")
	l.Info("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}
