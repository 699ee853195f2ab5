// ABOUTME: Calculates retained sizes using dominator tree analysis
// ABOUTME: Answers how much memory a single object keeps alive

package graph

// RetainedSize computes the retained size of every reachable object in
// the snapshot: the total size of everything that would become garbage
// if that object were reclaimed. An object retains exactly the objects
// it dominates, so the result is a bottom-up sum over the dominator
// tree. Returns a map from object ID to retained size in bytes.
func RetainedSize(g Graph) map[ObjID]uint64 {
	idom := Dominators(g)
	tree := DominatorTree(idom)
	sizes := objectSizes(g)

	retained := make(map[ObjID]uint64)

	var accumulate func(ObjID) uint64
	accumulate = func(node ObjID) uint64 {
		if size, done := retained[node]; done {
			return size
		}

		size := sizes[node]
		for _, child := range tree[node] {
			size += accumulate(child)
		}

		retained[node] = size
		return size
	}

	for node := range tree {
		accumulate(node)
	}

	delete(retained, 0)

	return retained
}

// RetainedSizeOf computes retained sizes for specific objects only,
// avoiding a full-graph result when only a few objects are of interest.
func RetainedSizeOf(g Graph, targets []ObjID) map[ObjID]uint64 {
	if len(targets) == 0 {
		return make(map[ObjID]uint64)
	}

	idom := Dominators(g)
	tree := DominatorTree(idom)
	sizes := objectSizes(g)

	result := make(map[ObjID]uint64)
	memo := make(map[ObjID]uint64)

	var accumulate func(ObjID) uint64
	accumulate = func(node ObjID) uint64 {
		if size, done := memo[node]; done {
			return size
		}

		size := sizes[node]
		for _, child := range tree[node] {
			size += accumulate(child)
		}

		memo[node] = size
		return size
	}

	for _, target := range targets {
		if _, exists := sizes[target]; exists && target != 0 {
			result[target] = accumulate(target)
		}
	}

	return result
}

// objectSizes collects per-object sizes, including the size-0 super-root.
func objectSizes(g Graph) map[ObjID]uint64 {
	sizes := make(map[ObjID]uint64)
	g.ForEach(func(obj *Object) {
		sizes[obj.ID] = obj.Size
	})
	sizes[0] = 0
	return sizes
}
