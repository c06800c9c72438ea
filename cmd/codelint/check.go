package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"codelint/internal/cache"
	"codelint/internal/diagfmt"
	"codelint/internal/driver"
	"codelint/internal/ui"
	"codelint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path...>",
	Short: "Analyze files and directories",
	Long: `Analyze source files. Directories are walked recursively for files with
the configured extensions; '-' reads standard input. Exits with status 1 when
any error diagnostic is found and 2 when a score is below --min-score.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max files analyzed in parallel (0=auto)")
	checkCmd.Flags().Duration("budget", 0, "wall-clock limit per file (0=unlimited)")
	checkCmd.Flags().StringSlice("disable", nil, "rule ids to skip (repeatable, comma-separated)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	checkCmd.Flags().Int("min-score", 0, "fail with status 2 when a file scores below this")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	st, err := loadSettings(cmd, configStartDir(args))
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseProgressMode(uiValue)
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	req := driver.Request{
		Paths:      args,
		Extensions: st.cfg.Analysis.Extensions,
		Exclude:    st.cfg.Analysis.Exclude,
		Jobs:       st.cfg.Analysis.Jobs,
		BaseDir:    cwd,
		Engine:     st.newEngine(cmd),
		Cache:      openCache(st),
		Logger:     st.log.Named("driver"),
		Stdin:      cmd.InOrStdin(),
	}

	var rep *driver.Report
	if wantProgress(mode, st.quiet, args) {
		rep, err = runCheckWithUI(cmd.Context(), req)
	} else {
		rep, err = driver.Run(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	if err := render(out, rep, st, pathMode); err != nil {
		return err
	}
	if st.timing {
		printTimings(cmd.ErrOrStderr(), rep)
	}
	return checkOutcome(rep, st.cfg.Output.MinScore)
}

func render(out io.Writer, rep *driver.Report, st *settings, pathMode diagfmt.PathMode) error {
	switch st.cfg.Output.Format {
	case "short":
		return diagfmt.Short(out, rep, pathMode)
	case "json":
		return diagfmt.JSON(out, rep, diagfmt.JSONOpts{PathMode: pathMode, Indent: true})
	case "sarif":
		return diagfmt.Sarif(out, rep, st.reg, diagfmt.SarifRunMeta{
			ToolName:       "codelint",
			ToolVersion:    version.Version,
			InformationURI: "https://github.com/codelint/codelint",
			PathMode:       pathMode,
		})
	default:
		return diagfmt.Pretty(out, rep, diagfmt.PrettyOpts{
			Color:     st.color,
			PathMode:  pathMode,
			ShowScore: true,
			ShowNotes: true,
			Quiet:     st.quiet,
		})
	}
}

// checkOutcome maps a finished run to the exit status. Error diagnostics
// and failed files take precedence over the score threshold.
func checkOutcome(rep *driver.Report, minScore int) error {
	if rep.HasErrors() {
		return &exitError{code: 1}
	}
	if minScore > 0 && rep.Summary.Files > rep.Summary.Failed && rep.Summary.MinScore < minScore {
		return &exitError{code: 2, msg: fmt.Sprintf("lowest score %d is below --min-score %d", rep.Summary.MinScore, minScore)}
	}
	return nil
}

func openCache(st *settings) *cache.Cache {
	if !st.cfg.Cache.Enabled {
		return nil
	}
	c, err := cache.Open(st.cfg.Cache.Dir)
	if err != nil {
		st.log.Warn("cache disabled", "error", err)
		return nil
	}
	return c
}

// configStartDir picks where config discovery begins: the first real path.
func configStartDir(args []string) string {
	for _, a := range args {
		if a != driver.StdinPath {
			return a
		}
	}
	return "."
}

type checkOutcomeMsg struct {
	rep *driver.Report
	err error
}

// runCheckWithUI runs the driver while a progress view renders on stderr.
func runCheckWithUI(ctx context.Context, req driver.Request) (*driver.Report, error) {
	files, err := driver.Collect(req.Paths, req.Extensions, req.Exclude)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcomeMsg, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		rep, err := driver.Run(ctx, reqCopy)
		outcomeCh <- checkOutcomeMsg{rep: rep, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("codelint check", files, events)
	// stdin may be the analyzed input, so the view takes no keyboard input
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы драйвер не заблокировался
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.rep, uiErr
	}
	return outcome.rep, outcome.err
}
