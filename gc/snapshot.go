// ABOUTME: Builds a point-in-time graph snapshot of the live heap
// ABOUTME: Bridges the collector arena to the graph analysis package

package gc

import (
	"fmt"
	"reflect"

	"github.com/prateek/marksweep/graph"
)

// Snapshot captures the live object graph: one graph object per live
// box, with edges discovered through the trace capability and roots
// taken from the current mark seed set. The snapshot is a copy; later
// mutation or collection does not affect it.
//
// Snapshot IDs are stable for an object's lifetime and can be obtained
// for a specific handle via Root.ID or Ref.ID.
func (h *Heap[T]) Snapshot() *graph.MemGraph {
	h.ensureMutable("Snapshot")
	h.collecting = true
	defer func() { h.collecting = false }()

	g := graph.NewMemGraph()

	var refs []graph.ObjID
	tr := &Tracer[T]{visit: func(slot, gen uint32, rooted bool) {
		if h.boxAt(slot, gen) != nil {
			refs = append(refs, snapshotID(slot))
		}
	}}

	for i, b := range h.boxes {
		if !b.live {
			continue
		}
		refs = nil
		h.trace(b.value, tr)

		obj := &graph.Object{
			ID:        snapshotID(uint32(i)),
			Type:      fmt.Sprintf("%T", b.value),
			Size:      valueSize(b.value),
			Refs:      append([]graph.ObjID{}, refs...),
			RootCount: b.roots,
		}
		g.AddObject(obj)
	}

	var rootIDs []graph.ObjID
	for _, slot := range h.markSeeds(h.internalRootCounts()) {
		rootIDs = append(rootIDs, snapshotID(slot))
	}
	g.SetRoots(graph.Roots{IDs: rootIDs})

	return g
}

// ID returns the handle target's snapshot identifier.
func (r Root[T]) ID() graph.ObjID {
	return snapshotID(r.slot)
}

// ID returns the reference target's snapshot identifier.
func (r Ref[T]) ID() graph.ObjID {
	return snapshotID(r.slot)
}

// snapshotID maps a slot index to a graph object ID. Snapshot IDs start
// at 1; ID 0 is reserved by the graph package for its super-root.
func snapshotID(slot uint32) graph.ObjID {
	return graph.ObjID(slot) + 1
}

func valueSize[T any](v T) uint64 {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return 0
	}
	return uint64(rt.Size())
}
