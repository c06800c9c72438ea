package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codelint/internal/driver"
	"codelint/internal/source"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file|->",
	Short: "Print the quality score (0-100) of one input",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var hintsCmd = &cobra.Command{
	Use:   "hints <file|->",
	Short: "Print the distinct remediation hints for one input",
	Args:  cobra.ExactArgs(1),
	RunE:  runHints,
}

func init() {
	scoreCmd.Flags().Bool("grade", false, "append the grade")
}

// readInput loads a file or stdin with the same normalization as check.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var raw []byte
	var err error
	if path == driver.StdinPath {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		// #nosec G304 -- path is provided by the user
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	content, _, err := source.Normalize(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(content), nil
}

func runScore(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	st, err := loadSettings(cmd, configStartDir(args))
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	withGrade, err := cmd.Flags().GetBool("grade")
	if err != nil {
		return fmt.Errorf("failed to get grade flag: %w", err)
	}

	eng := st.newEngine(cmd)
	if !withGrade {
		score, err := eng.Score(cmd.Context(), text)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), score)
		return err
	}
	res, err := eng.Analyze(cmd.Context(), text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", res.Score, res.Grade)
	return err
}

func runHints(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	st, err := loadSettings(cmd, configStartDir(args))
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	hints, err := st.newEngine(cmd).Suggestions(cmd.Context(), text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, h := range hints {
		if _, err := fmt.Fprintln(out, h); err != nil {
			return err
		}
	}
	return nil
}
