package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "CODELINT_LOG_LEVEL"

// Options describe a logger. Zero values give a warn-level text logger on stderr.
type Options struct {
	Name   string
	Level  string // trace|debug|info|warn|error|off
	Output io.Writer
	JSON   bool
}

// New creates an hclog.Logger. The level comes from EnvLevel if set, then
// from opts.Level. An unknown level falls back to warn with a warning.
func New(opts Options) hclog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Name == "" {
		opts.Name = "codelint"
	}
	level, err := ParseLevel(DetermineLevel(opts.Level))
	l := hclog.New(&hclog.LoggerOptions{
		Name:        opts.Name,
		Level:       level,
		Output:      opts.Output,
		JSONFormat:  opts.JSON,
		DisableTime: true,
	})
	if err != nil {
		l.Warn("unrecognized log level, defaulting to WARN", "provided", opts.Level)
	}
	return l
}

// DetermineLevel returns the level string in effect: the environment first,
// then configured.
func DetermineLevel(configured string) string {
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}
	return configured
}

// ParseLevel converts a level name to hclog.Level. An empty name is warn.
func ParseLevel(s string) (hclog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return hclog.Trace, nil
	case "DEBUG":
		return hclog.Debug, nil
	case "INFO":
		return hclog.Info, nil
	case "WARN", "WARNING", "":
		return hclog.Warn, nil
	case "ERROR":
		return hclog.Error, nil
	case "OFF":
		return hclog.Off, nil
	default:
		return hclog.Warn, fmt.Errorf("unknown log level %q (expected trace|debug|info|warn|error|off)", s)
	}
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
