// ABOUTME: BFS algorithm answering why an object is still alive
// ABOUTME: Finds up to K paths from an object back to the rooted set

package graph

// Path is a sequence of object IDs from a target object back to a root.
type Path struct {
	IDs []ObjID
}

// PathsToRoots finds up to maxPaths paths from an object to the rooted
// set by BFS over reverse edges. Each returned path starts at the object
// and ends at a root. Paths never revisit an object, so cyclic
// snapshots terminate.
func PathsToRoots(g Graph, from ObjID, maxPaths int) []Path {
	if maxPaths <= 0 {
		return nil
	}

	referrers := BuildReferrers(g)

	rootSet := make(map[ObjID]bool)
	for _, id := range g.Roots().IDs {
		rootSet[id] = true
	}

	// A rooted object is its own shortest path.
	if rootSet[from] {
		return []Path{{IDs: []ObjID{from}}}
	}

	type searchNode struct {
		id   ObjID
		path []ObjID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []ObjID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		for _, ref := range referrers[node.id] {
			if contains(node.path, ref) {
				continue
			}

			next := make([]ObjID, len(node.path)+1)
			copy(next, node.path)
			next[len(node.path)] = ref

			if rootSet[ref] {
				result = append(result, Path{IDs: next})
				if len(result) >= maxPaths {
					break
				}
				continue
			}
			queue = append(queue, searchNode{id: ref, path: next})
		}
	}

	return result
}

func contains(ids []ObjID, id ObjID) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}
