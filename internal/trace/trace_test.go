package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelGatesScopes(t *testing.T) {
	ring := NewRingTracer(16, LevelFile)
	run := Begin(ring, ScopeRun, "check", 0)
	file := Begin(ring, ScopeFile, "file:a.c", run.ID())
	rule := Begin(ring, ScopeRule, "rule:missing-return", file.ID())
	if rule.ID() != 0 {
		t.Fatal("rule span emitted at file level")
	}
	rule.End("")
	file.End("")
	run.End("")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[1].ParentID != events[0].SpanID {
		t.Fatalf("file span parent = %d, want %d", events[1].ParentID, events[0].SpanID)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Seq <= events[i-1].Seq {
			t.Fatal("sequence numbers are not increasing")
		}
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeRule, name, "", 0)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ","); got != "c,d,e" {
		t.Fatalf("snapshot = %s", got)
	}
}

func TestStreamChromeIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDebug, FormatChrome)
	s := Begin(st, ScopeFile, "file:x", 0)
	Point(st, ScopeRule, "rule failed", "boom", s.ID())
	s.WithExtra("diagnostics", "3").End("ok")
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		TraceEvents []map[string]any `json:"traceEvents"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid chrome trace: %v\n%s", err, buf.String())
	}
	if len(doc.TraceEvents) != 3 {
		t.Fatalf("got %d events", len(doc.TraceEvents))
	}
}

func TestNopAndParse(t *testing.T) {
	if Begin(Nop, ScopeRun, "x", 0).End("") != 0 {
		t.Fatal("nop span measured time")
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("bad level accepted")
	}
	if l, err := ParseLevel("FILE"); err != nil || l != LevelFile {
		t.Fatalf("ParseLevel(FILE) = %v, %v", l, err)
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode(both) = %v, %v", m, err)
	}
	if formatForPath("out.ndjson") != FormatNDJSON || formatForPath("out.json") != FormatChrome {
		t.Fatal("format auto-detection")
	}
}
