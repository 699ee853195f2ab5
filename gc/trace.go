// ABOUTME: Trace capability contract and the Tracer visitor
// ABOUTME: Defines how stored values report their outgoing handles and references

package gc

// Trace is the capability every heap-storable value must implement. A
// value's Trace method must call tr.Visit for every Ref and tr.VisitRoot
// for every Root it directly owns. Leaf values with no outgoing edges
// implement Trace as a no-op.
//
// The enumeration must be exact: reporting a child twice is harmless, but
// omitting one lets the collector free an object that is still referenced.
// Trace implementations must not allocate, clone, drop handles, or invoke
// Collect; the heap rejects such calls while a trace is in progress.
type Trace[T any] interface {
	Trace(tr *Tracer[T])
}

// Tracer visits the outgoing edges of one stored value. The collector
// supplies a fresh Tracer for each phase; values only ever see it inside
// their Trace method and must not retain it.
type Tracer[T any] struct {
	// visit receives the target slot and generation of each reported
	// edge. rooted distinguishes owned Root handles from plain Refs.
	visit func(slot, gen uint32, rooted bool)
}

// Visit reports an internal reference owned by the value being traced.
// Zero-valued Refs are ignored, so optional edges trace cleanly.
func (tr *Tracer[T]) Visit(r Ref[T]) {
	if r.h == nil {
		return
	}
	tr.visit(r.slot, r.gen, false)
}

// VisitRoot reports a root handle owned by the value being traced.
// Zero-valued Roots are ignored.
func (tr *Tracer[T]) VisitRoot(r Root[T]) {
	if r.h == nil {
		return
	}
	tr.visit(r.slot, r.gen, true)
}
