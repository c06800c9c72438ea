package diag

// SeverityResolver returns the authoritative severity of a rule.
type SeverityResolver func(ruleID string) (Severity, bool)

// Counts tallies diagnostics per severity.
type Counts struct {
	Errors   int `json:"errors" msgpack:"errors"`
	Warnings int `json:"warnings" msgpack:"warnings"`
	Infos    int `json:"infos" msgpack:"infos"`
}

// Count classifies each diagnostic through resolve. Diagnostics of rules the
// resolver does not know are not counted.
func Count(ds []Diagnostic, resolve SeverityResolver) Counts {
	var c Counts
	for _, d := range ds {
		sev, ok := resolve(d.RuleID)
		if !ok {
			continue
		}
		switch sev {
		case SevError:
			c.Errors++
		case SevWarning:
			c.Warnings++
		case SevInfo:
			c.Infos++
		}
	}
	return c
}

// Total returns the number of counted diagnostics.
func (c Counts) Total() int {
	return c.Errors + c.Warnings + c.Infos
}

// Penalty is the score deduction for these counts.
func (c Counts) Penalty() int {
	return c.Errors*SevError.Penalty() + c.Warnings*SevWarning.Penalty() + c.Infos*SevInfo.Penalty()
}
