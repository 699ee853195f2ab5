// ABOUTME: Implements Lengauer-Tarjan algorithm for computing dominators in snapshot graphs
// ABOUTME: Immediate dominators drive retained-size accounting
package graph

// Dominators computes the immediate dominator for each object reachable
// from the rooted set, using the Lengauer-Tarjan algorithm. A synthetic
// super-root (ID 0) points at every root so that multiply-rooted
// snapshots still form a single flow graph; it dominates all roots and
// has no dominator itself.
// Returns a map from object ID to its immediate dominator ID.
func Dominators(g Graph) map[ObjID]ObjID {
	// Forward adjacency, including the super-root's edges to the roots.
	adj := make(map[ObjID][]ObjID)
	roots := g.Roots()
	if len(roots.IDs) > 0 {
		adj[0] = roots.IDs
	}
	g.ForEach(func(obj *Object) {
		if len(obj.Refs) > 0 {
			adj[obj.ID] = append([]ObjID{}, obj.Refs...)
		}
	})

	// Predecessor lists, computed once up front so the semidominator
	// step does not rescan every object per vertex.
	preds := make(map[ObjID][]ObjID)
	for from, targets := range adj {
		for _, to := range targets {
			preds[to] = append(preds[to], from)
		}
	}

	var dfsNum int
	vertex := make([]ObjID, 0, g.NumObjects()+1) // DFS number -> vertex ID
	parent := make(map[ObjID]int)                // vertex -> DFS number of spanning-tree parent
	dfnum := make(map[ObjID]int)                 // vertex -> DFS number
	semi := make(map[ObjID]int)                  // vertex -> DFS number of semidominator
	ancestor := make(map[ObjID]int)              // link-eval forest
	idom := make(map[ObjID]ObjID)                // vertex -> immediate dominator
	samedom := make(map[ObjID]ObjID)             // link-eval forest
	best := make(map[ObjID]ObjID)                // link-eval forest
	bucket := make(map[int][]ObjID)              // semidominator -> vertices

	var dfs func(v ObjID, p int)
	dfs = func(v ObjID, p int) {
		if _, visited := dfnum[v]; visited {
			return
		}

		dfnum[v] = dfsNum
		vertex = append(vertex, v)
		parent[v] = p
		semi[v] = dfsNum
		ancestor[v] = -1
		best[v] = v
		samedom[v] = v
		dfsNum++

		for _, w := range adj[v] {
			dfs(w, dfnum[v])
		}
	}

	dfs(0, -1) // start from the super-root

	// Link-eval with path compression.
	var compress func(v ObjID)
	compress = func(v ObjID) {
		anc := ancestor[v]
		if anc == -1 {
			return
		}
		ancID := vertex[anc]
		if ancestor[ancID] != -1 {
			compress(ancID)
			if semi[best[ancID]] < semi[best[v]] {
				best[v] = best[ancID]
			}
			ancestor[v] = ancestor[ancID]
		}
	}

	eval := func(v ObjID) ObjID {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return best[v]
	}

	// considerEdge folds one incoming edge v->w into w's semidominator.
	considerEdge := func(v, w ObjID) {
		vNum, reachable := dfnum[v]
		if !reachable {
			return
		}

		var u ObjID
		if vNum <= dfnum[w] {
			u = v
		} else {
			u = eval(v)
		}
		if semi[u] < semi[w] {
			semi[w] = semi[u]
		}
	}

	// Process vertices in reverse DFS order.
	for i := dfsNum - 1; i > 0; i-- {
		w := vertex[i]

		// Step 2: compute semidominators from all predecessors of w.
		for _, v := range preds[w] {
			considerEdge(v, w)
		}

		bucket[semi[w]] = append(bucket[semi[w]], w)
		if parent[w] != -1 {
			ancestor[w] = parent[w]
		}

		// Step 3: implicitly compute immediate dominators.
		for _, v := range bucket[parent[w]] {
			u := eval(v)
			if semi[u] == semi[v] {
				idom[v] = vertex[parent[w]]
			} else {
				samedom[v] = u
			}
		}
		bucket[parent[w]] = nil
	}

	// Step 4: explicitly compute deferred immediate dominators.
	for i := 1; i < dfsNum; i++ {
		w := vertex[i]
		if samedom[w] != w {
			idom[w] = idom[samedom[w]]
		}
	}

	delete(idom, 0)

	return idom
}

// DominatorTree builds a tree structure from immediate dominators.
// Returns a map from each node to the nodes it immediately dominates.
func DominatorTree(idom map[ObjID]ObjID) map[ObjID][]ObjID {
	tree := make(map[ObjID][]ObjID)

	for node := range idom {
		tree[node] = []ObjID{}
	}
	tree[0] = []ObjID{} // super-root

	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}

	return tree
}
