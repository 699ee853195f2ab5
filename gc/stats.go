// ABOUTME: Point-in-time heap statistics for introspection and tests
// ABOUTME: Counts live objects, lifetime allocations, and collector activity

package gc

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats is a snapshot of the heap's counters.
type Stats struct {
	// Live is the current number of allocated objects.
	Live int
	// TotalAllocated counts every allocation over the heap's lifetime.
	TotalAllocated uint64
	// Collections counts completed collection cycles.
	Collections uint64
	// Freed counts objects reclaimed across all cycles.
	Freed uint64
	// LastPause is the duration of the most recent cycle.
	LastPause time.Duration
}

// Stats returns the heap's current counters.
func (h *Heap[T]) Stats() Stats {
	return Stats{
		Live:           h.live,
		TotalAllocated: h.allocated,
		Collections:    h.collections,
		Freed:          h.freedTotal,
		LastPause:      time.Duration(h.lastPauseNS),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%s live / %s allocated, %s freed in %s collections (last pause %v)",
		humanize.Comma(int64(s.Live)),
		humanize.Comma(int64(s.TotalAllocated)),
		humanize.Comma(int64(s.Freed)),
		humanize.Comma(int64(s.Collections)),
		s.LastPause,
	)
}
