package diag

import "testing"

func TestSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		penalty int
	}{
		{"error", SevError, 10},
		{"WARNING", SevWarning, 5},
		{"warn", SevWarning, 5},
		{" info ", SevInfo, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if err != nil {
				t.Fatalf("ParseSeverity(%q): %v", tt.in, err)
			}
			if got != tt.want || got.Penalty() != tt.penalty {
				t.Fatalf("got %v (penalty %d)", got, got.Penalty())
			}
			text, err := got.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			var back Severity
			if err := back.UnmarshalText(text); err != nil || back != got {
				t.Fatalf("text round trip: %v %v", back, err)
			}
		})
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
	if Severity(7).Valid() {
		t.Fatalf("Severity(7) must be invalid")
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	ds := []Diagnostic{
		{RuleID: "mismatched-braces", Line: 1, Column: 1, Message: "first line\nsecond", Severity: SevError},
		{RuleID: "trailing-whitespace", Line: 2, Column: 7, Message: "Trailing whitespace at end of line", Severity: SevInfo},
	}
	want := "error mismatched-braces 1:1 first line second\n" +
		"info trailing-whitespace 2:7 Trailing whitespace at end of line"
	if got := FormatGoldenDiagnostics(ds); got != want {
		t.Fatalf("unexpected golden output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	short := FormatShortDiagnostics("./src/a.c", ds[1:])
	if short != "src/a.c:2:7: info trailing-whitespace: Trailing whitespace at end of line" {
		t.Fatalf("unexpected short output: %q", short)
	}
}
