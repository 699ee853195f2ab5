// ABOUTME: Root handle type, the counted external reference to a heap object
// ABOUTME: Clone and Drop adjust the target box's root count

package gc

// Root is a counted handle to one heap object. For the handle's entire
// lifetime the target box's root count includes a contribution of exactly
// one for it. Roots are how the mutator keeps objects alive: the mark
// phase starts from boxes whose count exceeds the handles held inside
// other heap values.
//
// A Root must be released exactly once with Drop, typically via defer on
// every exit path. Cloning yields an independent handle with its own
// contribution.
//
// Storing a Root inside a heap value transfers ownership to that value:
// the value must report it from Trace, and the mutator must not keep
// using its own copy of the handle. Clone first to hold both.
type Root[T any] struct {
	h    *Heap[T]
	slot uint32
	gen  uint32
}

// Clone returns a new handle to the same object and increments its root
// count.
func (r Root[T]) Clone() Root[T] {
	return r.h.cloneRoot(r.slot, r.gen)
}

// Drop releases the handle, decrementing the target's root count. The
// object is not freed immediately even if the count reaches zero; it may
// still be reachable through a cycle, so reclamation is deferred to the
// next sweep. Dropping the same handle twice is a usage error and panics
// once the count is exhausted.
func (r Root[T]) Drop() {
	r.h.dropRoot(r.slot, r.gen)
}

// Value returns a pointer to the stored value, valid for the handle's
// lifetime. It panics if the target has been reclaimed, which can only
// happen after a handle misuse such as a double Drop.
func (r Root[T]) Value() *T {
	if r.h == nil {
		panic("gc: Value on zero Root")
	}
	return &r.h.mustBox(r.slot, r.gen).value
}

// Ref downgrades the handle to a non-counted internal reference. The Ref
// does not keep the object alive; it is only valid stored inside another
// traced value that is itself reachable.
func (r Root[T]) Ref() Ref[T] {
	return Ref[T]{h: r.h, slot: r.slot, gen: r.gen}
}

// Live reports whether the handle's target is still allocated.
func (r Root[T]) Live() bool {
	return r.h != nil && r.h.boxAt(r.slot, r.gen) != nil
}
