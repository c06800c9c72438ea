// Package config loads codelint settings from codelint.toml or
// .codelint.yaml, found by walking up from the analyzed directory.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"codelint/internal/rules"
)

// File names looked up during discovery, in priority order.
var FileNames = []string{"codelint.toml", ".codelint.yaml", ".codelint.yml"}

// Config mirrors the file layout.
type Config struct {
	Path     string         `toml:"-" yaml:"-"` // file it was loaded from, "" for defaults
	Analysis AnalysisConfig `toml:"analysis" yaml:"analysis"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Cache    CacheConfig    `toml:"cache" yaml:"cache"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

type AnalysisConfig struct {
	Jobs       int      `toml:"jobs" yaml:"jobs"`
	Budget     Duration `toml:"budget" yaml:"budget"` // per file
	Disable    []string `toml:"disable" yaml:"disable"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
	Exclude    []string `toml:"exclude" yaml:"exclude"` // globs on base names and relative paths
}

type OutputConfig struct {
	Format         string `toml:"format" yaml:"format"`
	Color          string `toml:"color" yaml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics" yaml:"max_diagnostics"`
	MinScore       int    `toml:"min_score" yaml:"min_score"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" yaml:"dir"` // "" means the user cache dir
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Formats and color modes accepted in [output].
var (
	Formats    = []string{"pretty", "short", "json", "sarif"}
	ColorModes = []string{"auto", "on", "off"}
)

// DefaultExtensions are the file types analyzed when walking directories.
var DefaultExtensions = []string{
	".c", ".h", ".cc", ".cpp", ".cxx", ".hpp",
	".java", ".js", ".jsx", ".mjs", ".ts", ".tsx",
	".py", ".go", ".cs",
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Extensions: slices.Clone(DefaultExtensions),
			Exclude:    []string{".git", "node_modules", "vendor"},
		},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Cache:  CacheConfig{Enabled: true},
		Log:    LogConfig{Level: "warn"},
	}
}

// Validate reports every invalid setting at once. reg resolves rule ids in
// [analysis].disable.
func (c *Config) Validate(reg *rules.Registry) error {
	var errs []error
	a, o := c.Analysis, c.Output
	if a.Jobs < 0 {
		errs = append(errs, fmt.Errorf("analysis.jobs must be >= 0, got %d", a.Jobs))
	}
	if a.Budget < 0 {
		errs = append(errs, fmt.Errorf("analysis.budget must be >= 0, got %s", a.Budget))
	}
	for _, id := range a.Disable {
		if _, ok := reg.Lookup(id); !ok {
			errs = append(errs, fmt.Errorf("analysis.disable: %w: %s", rules.ErrUnknownRule, id))
		}
	}
	for _, ext := range a.Extensions {
		if len(ext) < 2 || ext[0] != '.' {
			errs = append(errs, fmt.Errorf("analysis.extensions: %q must start with a dot", ext))
		}
	}
	for _, pat := range a.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			errs = append(errs, fmt.Errorf("analysis.exclude: %q: %w", pat, err))
		}
	}
	if !slices.Contains(Formats, o.Format) {
		errs = append(errs, fmt.Errorf("output.format %q (expected one of %v)", o.Format, Formats))
	}
	if !slices.Contains(ColorModes, o.Color) {
		errs = append(errs, fmt.Errorf("output.color %q (expected one of %v)", o.Color, ColorModes))
	}
	if o.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("output.max_diagnostics must be >= 0, got %d", o.MaxDiagnostics))
	}
	if o.MinScore < 0 || o.MinScore > 100 {
		errs = append(errs, fmt.Errorf("output.min_score must be within [0, 100], got %d", o.MinScore))
	}
	if c.Log.Level != "" && c.Log.Level != "off" && hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		errs = append(errs, fmt.Errorf("log.level %q is not a level", c.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		if c.Path != "" {
			return fmt.Errorf("%s: %w", c.Path, err)
		}
		return err
	}
	return nil
}

// Registry applies [analysis].disable to reg.
func (c *Config) Registry(reg *rules.Registry) (*rules.Registry, error) {
	if len(c.Analysis.Disable) == 0 {
		return reg, nil
	}
	return reg.Without(c.Analysis.Disable...)
}

// Duration is a time.Duration written as "250ms" or "2s" in files.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML accepts the same strings; yaml.v3 does not consult TextUnmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
