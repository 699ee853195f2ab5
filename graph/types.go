// ABOUTME: Core data types for heap snapshot graphs
// ABOUTME: Defines Object, ObjID, and Roots structures

package graph

// ObjID is a unique identifier for a snapshot object. ID 0 is reserved
// for the synthetic super-root used by the dominator analyses; heap
// snapshots number objects starting at 1.
type ObjID uint64

// Object is a single object captured in a heap snapshot.
type Object struct {
	ID        ObjID   // Unique identifier
	Type      string  // Stored value type (e.g. "gc_test.node")
	Size      uint64  // Footprint of the stored value in bytes
	Refs      []ObjID // IDs of objects this object's trace reported
	RootCount uint32  // Root handles outstanding against this object
}

// Roots is the set of externally rooted objects: the seeds the mark
// phase starts from.
type Roots struct {
	IDs []ObjID
}
