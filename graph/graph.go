// ABOUTME: Graph interface and in-memory implementation
// ABOUTME: Stores and queries heap snapshot object graphs

package graph

import "sync"

// Graph is a queryable heap snapshot.
type Graph interface {
	// AddObject adds an object, replacing any object with the same ID
	AddObject(obj *Object)

	// Object retrieves an object by ID, or nil if absent
	Object(id ObjID) *Object

	// NumObjects returns the total number of objects
	NumObjects() int

	// ForEach iterates over all objects
	ForEach(fn func(*Object))

	// SetRoots sets the externally rooted object set
	SetRoots(roots Roots)

	// Roots returns the externally rooted object set
	Roots() Roots
}

// MemGraph is an in-memory implementation of Graph.
type MemGraph struct {
	mu      sync.RWMutex
	objects map[ObjID]*Object
	roots   Roots
}

// NewMemGraph creates an empty in-memory graph.
func NewMemGraph() *MemGraph {
	return &MemGraph{
		objects: make(map[ObjID]*Object),
	}
}

// AddObject adds an object, replacing any object with the same ID.
func (g *MemGraph) AddObject(obj *Object) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.objects[obj.ID] = obj
}

// Object retrieves an object by ID, or nil if absent.
func (g *MemGraph) Object(id ObjID) *Object {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.objects[id]
}

// NumObjects returns the total number of objects.
func (g *MemGraph) NumObjects() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects)
}

// ForEach iterates over all objects.
func (g *MemGraph) ForEach(fn func(*Object)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, obj := range g.objects {
		fn(obj)
	}
}

// SetRoots sets the externally rooted object set.
func (g *MemGraph) SetRoots(roots Roots) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roots = roots
}

// Roots returns the externally rooted object set.
func (g *MemGraph) Roots() Roots {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roots
}
