package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"codelint/internal/config"
	"codelint/internal/engine"
	"codelint/internal/logger"
	"codelint/internal/rules"
	"codelint/internal/trace"
)

// settings is the resolved configuration of one command: file values with
// flags applied on top.
type settings struct {
	cfg    *config.Config
	log    hclog.Logger
	reg    *rules.Registry
	color  bool
	quiet  bool
	timing bool
}

// loadSettings resolves the config for startDir (a file or directory), lets
// changed flags override it and validates the result.
func loadSettings(cmd *cobra.Command, startDir string) (*settings, error) {
	explicit, err := persistentString(cmd, "config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(explicit, startDir)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(rules.Default()); err != nil {
		return nil, err
	}
	reg, err := cfg.Registry(rules.Default())
	if err != nil {
		return nil, err
	}

	st := &settings{cfg: cfg, reg: reg}
	pf := cmd.Root().PersistentFlags()
	if st.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if st.timing, err = pf.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	st.color = resolveColor(cfg.Output.Color)
	color.NoColor = !st.color
	st.log = logger.New(logger.Options{Level: cfg.Log.Level, Output: cmd.ErrOrStderr()})
	if cfg.Path != "" {
		st.log.Debug("config loaded", "path", cfg.Path)
	}
	return st, nil
}

// applyFlags copies explicitly set flags into cfg. Flags that a command does
// not define are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}
	var err error
	if changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if changed("max-diagnostics") {
		if cfg.Output.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	if changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if changed("jobs") {
		if cfg.Analysis.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if changed("budget") {
		d, err := flags.GetDuration("budget")
		if err != nil {
			return err
		}
		cfg.Analysis.Budget = config.Duration(d)
	}
	if changed("disable") {
		ids, err := flags.GetStringSlice("disable")
		if err != nil {
			return err
		}
		cfg.Analysis.Disable = append(cfg.Analysis.Disable, ids...)
	}
	if changed("min-score") {
		if cfg.Output.MinScore, err = flags.GetInt("min-score"); err != nil {
			return err
		}
	}
	if changed("no-cache") {
		noCache, err := flags.GetBool("no-cache")
		if err != nil {
			return err
		}
		cfg.Cache.Enabled = !noCache
	}
	return nil
}

// newEngine builds the engine for st. The tracer comes from the command
// context so analysis spans nest under the run span.
func (st *settings) newEngine(cmd *cobra.Command) *engine.Engine {
	return engine.New(engine.Options{
		Registry:       st.reg,
		Jobs:           st.cfg.Analysis.Jobs,
		Budget:         st.cfg.Analysis.Budget.Std(),
		Logger:         st.log.Named("engine"),
		Tracer:         trace.FromContext(cmd.Context()),
		MaxDiagnostics: st.cfg.Output.MaxDiagnostics,
	})
}

func resolveColor(mode string) bool {
	switch strings.ToLower(mode) {
	case "on":
		return true
	case "off":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)
	}
}

func disableColor() { color.NoColor = true }
