package rules

import (
	"errors"
	"slices"
	"testing"

	"codelint/internal/diag"
)

func noop(*Unit, *Reporter) {}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	want := []string{
		MultipleSemicolons, EmptyBraces, MismatchedBraces, MismatchedParentheses,
		MismatchedBrackets, IncompleteExpression, OffByOneLoop, MissingReturn,
		DuplicateCode, EmptyCatch, UnreachableCode, UndeclaredVariable,
		MissingSemicolon, TrailingWhitespace,
	}
	if got := reg.IDs(); !slices.Equal(got, want) {
		t.Fatalf("ids = %v", got)
	}
	sev := map[string]diag.Severity{
		DuplicateCode:      diag.SevInfo,
		TrailingWhitespace: diag.SevInfo,
		EmptyBraces:        diag.SevWarning,
		OffByOneLoop:       diag.SevWarning,
		EmptyCatch:         diag.SevWarning,
		UnreachableCode:    diag.SevWarning,
		MismatchedBraces:   diag.SevError,
		UndeclaredVariable: diag.SevError,
	}
	for id, s := range sev {
		if got, ok := reg.Severity(id); !ok || got != s {
			t.Errorf("%s severity = %v, %v; want %v", id, got, ok, s)
		}
	}
	for _, r := range reg.All() {
		if r.Summary == "" || r.Suggestion == "" {
			t.Errorf("%s: missing summary or suggestion", r.ID)
		}
	}
}

func TestNewRegistryValidation(t *testing.T) {
	ok := Rule{ID: "a", Severity: diag.SevInfo, Check: noop}
	tests := []struct {
		name  string
		rules []Rule
		want  error
	}{
		{"empty id", []Rule{{Severity: diag.SevInfo, Check: noop}}, ErrEmptyID},
		{"nil check", []Rule{{ID: "a", Severity: diag.SevInfo}}, ErrNilCheck},
		{"duplicate", []Rule{ok, ok}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.rules...); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := NewRegistry(Rule{ID: "a", Severity: diag.Severity(9), Check: noop}); err == nil {
		t.Fatal("invalid severity accepted")
	}
}

func TestRegistryWithout(t *testing.T) {
	reg := Default()
	trimmed, err := reg.Without(TrailingWhitespace, DuplicateCode)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed.Len() != reg.Len()-2 {
		t.Fatalf("len = %d", trimmed.Len())
	}
	if _, ok := trimmed.Lookup(TrailingWhitespace); ok {
		t.Fatal("trailing-whitespace still registered")
	}
	if trimmed.Fingerprint() == reg.Fingerprint() {
		t.Fatal("fingerprint did not change")
	}
	if reg.Len() != 14 {
		t.Fatal("Without mutated the source registry")
	}
	if _, err := reg.Without("no-such-rule"); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("err = %v", err)
	}
}

func TestFingerprintStable(t *testing.T) {
	a := mustRegistry(Builtin()...)
	rs := Builtin()
	slices.Reverse(rs)
	b := mustRegistry(rs...)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("fingerprint depends on registration order")
	}
}
