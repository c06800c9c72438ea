package ui

import (
	"fmt"
	"strings"
	"testing"

	"codelint/internal/driver"
)

func TestApplyEventTracksStatus(t *testing.T) {
	m := NewProgressModel("check", []string{"a.c", "b.c"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.c", Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.c", Status: driver.StatusDone, Cached: true})
	m.applyEvent(driver.Event{File: "unknown.c", Status: driver.StatusDone})

	if got := m.items[0].status; got != "analyzing" {
		t.Errorf("a.c status = %q", got)
	}
	if got := m.items[1].status; got != "cached" {
		t.Errorf("b.c status = %q", got)
	}
	if m.settled != 1 {
		t.Errorf("settled = %d, want 1", m.settled)
	}

	m.applyEvent(driver.Event{File: "a.c", Status: driver.StatusError})
	view := m.View()
	if !strings.Contains(view, "(2/2)") || !strings.Contains(view, "error") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestVisibleRowsCapsLargeScans(t *testing.T) {
	files := make([]string, maxRows+5)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.c", i)
	}
	m := NewProgressModel("check", files, nil).(*progressModel)
	for _, f := range files {
		m.applyEvent(driver.Event{File: f, Status: driver.StatusDone})
	}
	rows := m.visibleRows()
	if len(rows) != maxRows {
		t.Fatalf("want %d rows, got %d", maxRows, len(rows))
	}
	if rows[len(rows)-1] != len(files)-1 {
		t.Errorf("newest row should be last, got %d", rows[len(rows)-1])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.c", 20, "short.c"},
		{"very/long/path/file.c", 10, "very/lo..."},
		{"日本語.c", 5, "日..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
