package driver

import (
	"fmt"
	"sync/atomic"
)

// runMetrics counts worker and cache outcomes across one Run.
type runMetrics struct {
	workersActive    atomic.Int32
	workersCompleted atomic.Int64
	workersErrors    atomic.Int64

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheWrites atomic.Int64
}

func (m *runMetrics) String() string {
	hits := m.cacheHits.Load()
	total := hits + m.cacheMisses.Load()
	rate := 0.0
	if total > 0 {
		rate = float64(hits) / float64(total) * 100
	}
	return fmt.Sprintf(
		"workers: %d completed, %d errors | cache: %d/%d hits (%.1f%%), %d writes",
		m.workersCompleted.Load(), m.workersErrors.Load(),
		hits, total, rate, m.cacheWrites.Load(),
	)
}
