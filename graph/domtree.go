// ABOUTME: Utility functions for working with dominator trees
// ABOUTME: Depth, ancestry, and dominator-path queries over snapshots
package graph

// DominatorDepth computes the depth of each node in the dominator tree.
// Returns a map from node ID to its depth (the super-root has depth 0).
func DominatorDepth(tree map[ObjID][]ObjID) map[ObjID]int {
	depth := make(map[ObjID]int)

	var walk func(node ObjID, d int)
	walk = func(node ObjID, d int) {
		depth[node] = d
		for _, child := range tree[node] {
			walk(child, d+1)
		}
	}

	walk(0, 0)

	return depth
}

// DominatorPath returns the chain of dominators from a node up to the
// super-root, starting with the node itself. Every object on this path
// must stay alive for the node to stay alive.
func DominatorPath(idom map[ObjID]ObjID, node ObjID) []ObjID {
	var path []ObjID
	current := node

	for {
		path = append(path, current)
		dom, exists := idom[current]
		if !exists || dom == 0 {
			if current != 0 {
				path = append(path, 0)
			}
			break
		}
		current = dom
	}

	return path
}

// IsDominated reports whether node is dominated by dominator.
func IsDominated(idom map[ObjID]ObjID, node, dominator ObjID) bool {
	if node == dominator {
		return true // a node dominates itself
	}

	current := node
	for {
		dom, exists := idom[current]
		if !exists {
			return false
		}
		if dom == dominator {
			return true
		}
		if dom == 0 {
			return dominator == 0
		}
		current = dom
	}
}
