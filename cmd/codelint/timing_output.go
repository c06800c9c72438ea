package main

import (
	"fmt"
	"io"
	"time"

	"codelint/internal/driver"
)

// printTimings reports the run on stderr: wall time, worker and cache
// counters, then the slowest rules of every freshly analyzed file.
func printTimings(out io.Writer, rep *driver.Report) {
	fmt.Fprintf(out, "run %s: %.1f ms\n", rep.Summary.RunID, toMillis(rep.Summary.Elapsed))
	fmt.Fprintln(out, rep.Summary.Stats)
	for _, fr := range rep.Files {
		if fr.Result == nil || fr.Cached || len(fr.Result.Timings.Phases) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s: %.2f ms in rules\n", fr.Path, fr.Result.Timings.TotalMS)
		for _, p := range fr.Result.Timings.Slowest(3) {
			fmt.Fprintf(out, "  %-28s %7.2f ms\n", p.Name, p.DurationMS)
		}
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
