// ABOUTME: Mark and sweep collection cycle over the heap's object boxes
// ABOUTME: Census discounts heap-internal root handles so rooted cycles still collect

package gc

import (
	"time"

	"github.com/go-kit/log/level"
)

// Collect runs one synchronous mark/sweep cycle and returns the number
// of objects freed. It is a no-op (returning 0) when the heap is empty
// or nothing is unreachable. Calling Collect from inside a Trace
// callback panics; a cycle never runs reentrantly.
func (h *Heap[T]) Collect() int {
	h.ensureMutable("Collect")
	if h.live == 0 {
		return 0
	}

	h.collecting = true
	defer func() { h.collecting = false }()

	start := time.Now()
	h.mark(h.markSeeds(h.internalRootCounts()))
	freed := h.sweep()
	pause := time.Since(start)

	h.collections++
	h.freedTotal += uint64(freed)
	h.lastPauseNS = pause.Nanoseconds()
	if h.metrics != nil {
		h.metrics.collections.Inc()
		h.metrics.freed.Add(float64(freed))
		h.metrics.liveObjects.Set(float64(h.live))
		h.metrics.pause.Observe(pause.Seconds())
	}
	level.Debug(h.logger).Log(
		"msg", "collection cycle complete",
		"freed", freed,
		"live", h.live,
		"pause", pause,
	)
	return freed
}

// internalRootCounts traces every live box and counts, per slot, how
// many root handles are held inside other heap values. A box's root
// count minus this contribution is the number of handles held by the
// mutator proper; only those make the box a mark seed. Without the
// census, a cycle whose members hold root handles to each other would
// pin itself forever.
// A value owns each handle once, so within one traced value a rooted
// edge contributes at most once even if Trace reports it repeatedly.
// Without the per-owner dedup a duplicate report would overstate the
// internal contribution and let an externally rooted box be swept.
func (h *Heap[T]) internalRootCounts() []uint32 {
	internal := make([]uint32, len(h.boxes))
	var seen map[uint64]struct{}
	tr := &Tracer[T]{visit: func(slot, gen uint32, rooted bool) {
		if !rooted {
			return
		}
		key := handleKey(slot, gen)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		if h.boxAt(slot, gen) != nil {
			internal[slot]++
		}
	}}
	for _, b := range h.boxes {
		if b.live {
			seen = make(map[uint64]struct{})
			h.trace(b.value, tr)
		}
	}
	return internal
}

// handleKey identifies one owned handle target within a traced value.
func handleKey(slot, gen uint32) uint64 {
	return uint64(slot)<<32 | uint64(gen)
}

// markSeeds returns every slot whose root count exceeds the handles held
// for it inside the heap, i.e. every box reachable from outside.
func (h *Heap[T]) markSeeds(internal []uint32) []uint32 {
	var seeds []uint32
	for i, b := range h.boxes {
		if b.live && b.roots > internal[i] {
			seeds = append(seeds, uint32(i))
		}
	}
	return seeds
}

// mark sets the mark bit on every box transitively reachable from the
// seed set. The worklist skip on already-marked boxes is what breaks
// cycles and bounds the phase at O(live objects + live edges).
func (h *Heap[T]) mark(seeds []uint32) {
	work := seeds
	tr := &Tracer[T]{visit: func(slot, gen uint32, rooted bool) {
		b := h.boxAt(slot, gen)
		if b == nil || b.marked {
			return
		}
		work = append(work, slot)
	}}

	for len(work) > 0 {
		slot := work[len(work)-1]
		work = work[:len(work)-1]

		b := h.boxes[slot]
		if b.marked {
			continue
		}
		b.marked = true
		h.trace(b.value, tr)
	}
}

// sweep frees every unmarked live box and clears the mark bit on the
// survivors. The mark bit as set at mark-phase end is the sole liveness
// oracle: root counts decremented while releasing a swept value never
// cause a marked box to be reconsidered within the same pass.
func (h *Heap[T]) sweep() int {
	// Releasing a swept value drops the root handles it owns, each at
	// most once per owner so a duplicate Trace report cannot
	// double-decrement a survivor. Targets freed earlier in this same
	// pass fail the generation check and are skipped; marked targets
	// survive with a corrected count.
	var seen map[uint64]struct{}
	release := &Tracer[T]{visit: func(slot, gen uint32, rooted bool) {
		if !rooted {
			return
		}
		key := handleKey(slot, gen)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		if b := h.boxAt(slot, gen); b != nil && b.roots > 0 {
			b.roots--
		}
	}}

	freed := 0
	var zero T
	for i, b := range h.boxes {
		if !b.live {
			continue
		}
		if b.marked {
			b.marked = false
			continue
		}

		seen = make(map[uint64]struct{})
		h.trace(b.value, release)
		b.value = zero
		b.roots = 0
		b.live = false
		b.gen++
		h.free = append(h.free, uint32(i))
		h.live--
		freed++
	}
	return freed
}
