package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerConcurrentRecord(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Record("rule", time.Millisecond, "")
		}()
	}
	wg.Wait()
	r := tm.Report()
	if len(r.Phases) != 8 {
		t.Fatalf("got %d phases", len(r.Phases))
	}
	if r.TotalMS < 7.9 {
		t.Fatalf("total = %.2f", r.TotalMS)
	}
}

func TestSlowestAndSummary(t *testing.T) {
	tm := NewTimer()
	tm.Record("fast", time.Millisecond, "")
	tm.Record("slow", 5*time.Millisecond, "3 diagnostics")
	idx := tm.Begin("open")
	tm.End(idx, "")
	tm.End(99, "ignored")

	top := tm.Report().Slowest(1)
	if len(top) != 1 || top[0].Name != "slow" {
		t.Fatalf("slowest = %+v", top)
	}
	s := tm.Summary()
	if !strings.Contains(s, "// 3 diagnostics") || !strings.Contains(s, "total") {
		t.Fatalf("summary:\n%s", s)
	}
	if got := (Report{}).Slowest(3); len(got) != 0 {
		t.Fatalf("empty report slowest = %+v", got)
	}
}
