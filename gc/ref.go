// ABOUTME: Ref type, the non-counted internal reference between heap objects
// ABOUTME: Valid only inside traced values; dereference is generation-checked

package gc

// Ref is a non-counted reference to a heap object: a graph edge internal
// to the heap. It does not contribute to the target's root count and so
// never keeps the target alive on its own. A Ref is meant to live inside
// a value stored in some box and be reported by that value's Trace
// method; the collector's reachability guarantee is what keeps the
// target valid.
//
// Dereferencing a Ref whose target was swept is a contract violation by
// the owning value's Trace method. The slot generation check turns it
// into a deterministic panic rather than silent reuse of a recycled slot.
type Ref[T any] struct {
	h    *Heap[T]
	slot uint32
	gen  uint32
}

// Value returns a pointer to the referenced value. It panics if the Ref
// is the zero value or the target has been reclaimed.
func (r Ref[T]) Value() *T {
	if r.h == nil {
		panic("gc: Value on zero Ref")
	}
	return &r.h.mustBox(r.slot, r.gen).value
}

// Live reports whether the referenced object is still allocated. The
// zero Ref is not live.
func (r Ref[T]) Live() bool {
	return r.h != nil && r.h.boxAt(r.slot, r.gen) != nil
}
