// ABOUTME: Heap arena owning all object boxes and the allocation path
// ABOUTME: Provides slot reuse, the automatic collection trigger, and introspection

package gc

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultThreshold is the live-object count above which an allocation
// triggers an automatic collection when no explicit threshold is set.
const DefaultThreshold = 1024

// box is one heap slot: a stored value plus its collector metadata.
// A box with roots > 0 is never freed. The generation counter is bumped
// every time the slot is reclaimed, so stale handles into a reused slot
// are detected at dereference time.
type box[T any] struct {
	value  T
	gen    uint32
	roots  uint32
	marked bool
	live   bool
}

// Heap owns the full set of object boxes, live and recycled. All
// operations are plain synchronous calls; the heap must only ever be
// touched from a single goroutine. Heaps must be created with New; the
// type parameter is only bound to the Trace capability there.
type Heap[T any] struct {
	boxes []*box[T]
	free  []uint32 // reclaimed slot indices available for reuse

	// trace dispatches to the stored value's Trace method; bound by New.
	trace func(v T, tr *Tracer[T])

	live      int
	allocated uint64
	threshold int

	// collecting rejects reentrant mutation from inside Trace callbacks.
	collecting bool

	collections uint64
	freedTotal  uint64
	lastPauseNS int64

	logger  log.Logger
	metrics *heapMetrics
}

// options holds the configurable knobs shared by every Heap instantiation.
type options struct {
	threshold  int
	logger     log.Logger
	registerer prometheus.Registerer
}

// Option configures a Heap at construction time.
type Option func(*options)

// WithThreshold sets the live-object count that triggers an automatic
// collection after an allocation. A threshold of 0 disables the
// automatic trigger entirely; Collect can still be called explicitly.
func WithThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithLogger sets the logger used to report collection cycles.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer registers heap metrics with the given Prometheus
// registerer. Without this option no metrics are exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New creates an empty heap. The type parameter is the stored value
// type; it must implement the Trace capability.
func New[T Trace[T]](opts ...Option) *Heap[T] {
	o := options{
		threshold: DefaultThreshold,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	h := &Heap[T]{
		trace:     func(v T, tr *Tracer[T]) { v.Trace(tr) },
		threshold: o.threshold,
		logger:    o.logger,
	}
	if o.registerer != nil {
		h.metrics = newHeapMetrics(o.registerer)
	}
	return h
}

// Allocate stores v in a fresh or recycled box and returns a root handle
// with an initial root count of one. If the live-object count now exceeds
// the configured threshold, a collection runs before Allocate returns;
// the new object holds a root and always survives that cycle.
func (h *Heap[T]) Allocate(v T) Root[T] {
	h.ensureMutable("Allocate")

	slot := h.takeSlot()
	b := h.boxes[slot]
	b.value = v
	b.roots = 1
	b.marked = false
	b.live = true

	h.live++
	h.allocated++
	if h.metrics != nil {
		h.metrics.allocated.Inc()
		h.metrics.liveObjects.Set(float64(h.live))
	}

	r := Root[T]{h: h, slot: slot, gen: b.gen}

	if h.threshold > 0 && h.live > h.threshold {
		h.Collect()
	}
	return r
}

// takeSlot returns the index of a box ready to be initialized, reusing a
// reclaimed slot when one is available.
func (h *Heap[T]) takeSlot() uint32 {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		return slot
	}
	h.boxes = append(h.boxes, &box[T]{})
	return uint32(len(h.boxes) - 1)
}

// Len returns the number of live objects in the heap.
func (h *Heap[T]) Len() int {
	return h.live
}

// TotalAllocated returns the number of allocations performed over the
// heap's lifetime, including objects that have since been reclaimed.
func (h *Heap[T]) TotalAllocated() uint64 {
	return h.allocated
}

// Reset reclaims every box regardless of outstanding root counts. Any
// handle into the heap is invalid afterwards. This is the heap teardown
// operation; the zero live count makes subsequent reuse safe.
func (h *Heap[T]) Reset() {
	h.ensureMutable("Reset")

	var zero T
	h.free = h.free[:0]
	for i, b := range h.boxes {
		if b.live {
			b.value = zero
			b.roots = 0
			b.marked = false
			b.live = false
			b.gen++
		}
		h.free = append(h.free, uint32(i))
	}
	h.live = 0
	if h.metrics != nil {
		h.metrics.liveObjects.Set(0)
	}
}

// cloneRoot backs Root.Clone: one more counted handle to the same box.
func (h *Heap[T]) cloneRoot(slot, gen uint32) Root[T] {
	h.ensureMutable("Clone")
	b := h.mustBox(slot, gen)
	b.roots++
	return Root[T]{h: h, slot: slot, gen: gen}
}

// dropRoot backs Root.Drop. The box is never freed here, even at a count
// of zero: it may still sit on a cycle reachable from another root, so
// reclamation is deferred to the next sweep.
func (h *Heap[T]) dropRoot(slot, gen uint32) {
	h.ensureMutable("Drop")
	b := h.mustBox(slot, gen)
	if b.roots == 0 {
		panic(fmt.Sprintf("gc: Drop of root handle to slot %d with zero root count", slot))
	}
	b.roots--
}

// boxAt returns the box behind a handle, or nil if the slot has been
// reclaimed (or reclaimed and reused) since the handle was created.
func (h *Heap[T]) boxAt(slot, gen uint32) *box[T] {
	if int(slot) >= len(h.boxes) {
		return nil
	}
	b := h.boxes[slot]
	if !b.live || b.gen != gen {
		return nil
	}
	return b
}

// mustBox is boxAt for operations where a dead target is a usage error.
func (h *Heap[T]) mustBox(slot, gen uint32) *box[T] {
	b := h.boxAt(slot, gen)
	if b == nil {
		panic(fmt.Sprintf("gc: use of handle to slot %d after its target was reclaimed", slot))
	}
	return b
}

// ensureMutable rejects heap mutation from inside a Trace callback.
func (h *Heap[T]) ensureMutable(op string) {
	if h.collecting {
		panic("gc: " + op + " called from inside a trace; Trace implementations must not mutate the heap")
	}
}
