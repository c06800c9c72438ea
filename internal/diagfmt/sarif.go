package diagfmt

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"codelint/internal/diag"
	"codelint/internal/driver"
	"codelint/internal/rules"
)

func sarifLevel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// BuildSarif converts rep into a SARIF 2.1.0 report with one run. Every
// registered rule is declared, so consumers see the full rule set even when
// nothing fired.
func BuildSarif(rep *driver.Report, reg *rules.Registry, meta SarifRunMeta) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("create sarif report: %w", err)
	}
	run := sarif.NewRunWithInformationURI(meta.ToolName, meta.InformationURI)
	run.Tool.Driver.WithVersion(meta.ToolVersion)
	for _, r := range reg.All() {
		run.AddRule(r.ID).
			WithDescription(r.Summary).
			WithTextHelp(r.Suggestion).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: sarifLevel(r.Severity)})
	}

	base := baseDirOf(rep.FileSet)
	for i := range rep.Files {
		fr := &rep.Files[i]
		if fr.Err != nil || fr.Result == nil {
			continue
		}
		uri := displayPath(fr, meta.PathMode, base)
		for _, d := range fr.Result.Diagnostics {
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri)).
					WithRegion(sarif.NewRegion().WithStartLine(d.Line).WithStartColumn(d.Column)),
			)
			result := sarif.NewRuleResult(d.RuleID).
				WithMessage(sarif.NewTextMessage(d.Message)).
				WithLevel(sarifLevel(d.Severity)).
				WithLocations([]*sarif.Location{location})
			result.PropertyBag = *sarif.NewPropertyBag()
			result.Add("suggestion", d.Suggestion)
			result.Add("score", fr.Result.Score)
			run.AddResult(result)
		}
	}
	report.AddRun(run)
	return report, nil
}

// Sarif writes rep as an indented SARIF document.
func Sarif(w io.Writer, rep *driver.Report, reg *rules.Registry, meta SarifRunMeta) error {
	report, err := BuildSarif(rep, reg, meta)
	if err != nil {
		return err
	}
	return report.PrettyWrite(w)
}
