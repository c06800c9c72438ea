package diag

import "testing"

func d(rule string, line, col int, sev Severity) Diagnostic {
	return Diagnostic{RuleID: rule, Line: line, Column: col, Message: rule + " msg", Suggestion: "fix " + rule, Severity: sev}
}

func TestAggregateDedupAndSort(t *testing.T) {
	first := d("a", 3, 1, SevError)
	first.Message = "first"
	dup := d("a", 3, 1, SevError)
	dup.Message = "second"

	got := Aggregate(
		[]Diagnostic{d("b", 5, 2, SevInfo), first},
		[]Diagnostic{dup, d("c", 1, 9, SevWarning), d("a", 3, 1, SevWarning)},
		[]Diagnostic{d("z", 3, 1, SevInfo), d("b", 1, 2, SevInfo)},
	)

	want := []struct {
		rule      string
		line, col int
	}{
		{"b", 1, 2}, {"c", 1, 9}, {"a", 3, 1}, {"z", 3, 1}, {"b", 5, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].RuleID != w.rule || got[i].Line != w.line || got[i].Column != w.col {
			t.Errorf("[%d] = %v, want %s %d:%d", i, got[i], w.rule, w.line, w.col)
		}
	}
	// первая запись побеждает
	if got[2].Message != "first" {
		t.Errorf("duplicate replaced the first occurrence: %q", got[2].Message)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestBagSortIsStable(t *testing.T) {
	bag := NewBag(4)
	bag.Add(d("x", 2, 2, SevInfo))
	bag.Add(d("y", 2, 2, SevInfo))
	bag.Add(d("w", 1, 1, SevInfo))
	bag.Sort()
	items := bag.Items()
	if items[0].RuleID != "w" || items[1].RuleID != "x" || items[2].RuleID != "y" {
		t.Fatalf("unexpected order: %v", items)
	}
	snap := bag.Snapshot()
	snap[0].RuleID = "mutated"
	if bag.Items()[0].RuleID != "w" {
		t.Fatalf("Snapshot must copy")
	}
}

func TestBagReporterAndHasErrors(t *testing.T) {
	bag := NewBag(0)
	rep := BagReporter{Bag: bag}
	rep.Report(d("a", 1, 1, SevWarning))
	rep.Report(d("a", 1, 1, SevWarning))
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if bag.HasErrors() {
		t.Fatalf("no errors expected")
	}
	rep.Report(d("b", 1, 1, SevError))
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
}

func TestCount(t *testing.T) {
	registry := map[string]Severity{"e": SevError, "w": SevWarning, "i": SevInfo}
	resolve := func(id string) (Severity, bool) {
		s, ok := registry[id]
		return s, ok
	}
	// severity stamped on the diagnostic is ignored in favour of the resolver
	ds := []Diagnostic{d("e", 1, 1, SevInfo), d("w", 2, 1, SevError), d("i", 3, 1, SevError), d("i", 4, 1, SevError), d("unknown", 5, 1, SevError)}
	c := Count(ds, resolve)
	if c != (Counts{Errors: 1, Warnings: 1, Infos: 2}) {
		t.Fatalf("Counts = %+v", c)
	}
	if c.Total() != 4 || c.Penalty() != 19 {
		t.Fatalf("Total=%d Penalty=%d", c.Total(), c.Penalty())
	}
}
