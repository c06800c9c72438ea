package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codelint/internal/diagfmt"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active rules with their severities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		st, err := loadSettings(cmd, ".")
		if err != nil {
			return err
		}
		switch format {
		case "pretty":
			return diagfmt.RulesTable(cmd.OutOrStdout(), st.reg, st.color)
		case "json":
			return diagfmt.RulesJSON(cmd.OutOrStdout(), st.reg)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}
