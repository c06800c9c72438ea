package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"codelint/internal/rules"
)

// RuleJSON describes one registered rule.
type RuleJSON struct {
	ID         string `json:"id"`
	Severity   string `json:"severity"`
	Penalty    int    `json:"penalty"`
	Summary    string `json:"summary"`
	Suggestion string `json:"suggestion"`
}

// RulesJSON lists reg in registration order.
func RulesJSON(w io.Writer, reg *rules.Registry) error {
	out := make([]RuleJSON, 0, reg.Len())
	for _, r := range reg.All() {
		out = append(out, RuleJSON{
			ID:         r.ID,
			Severity:   r.Severity.String(),
			Penalty:    r.Severity.Penalty(),
			Summary:    r.Summary,
			Suggestion: r.Suggestion,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// RulesTable lists reg as aligned columns: id, severity, summary.
func RulesTable(w io.Writer, reg *rules.Registry, useColor bool) error {
	pal := newPalette(useColor)
	width := 0
	for _, r := range reg.All() {
		width = max(width, runewidth.StringWidth(r.ID))
	}
	for _, r := range reg.All() {
		sev := pal.severity(r.Severity).Sprint(runewidth.FillRight(r.Severity.String(), len("warning")))
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", runewidth.FillRight(r.ID, width), sev, r.Summary); err != nil {
			return err
		}
	}
	return nil
}
