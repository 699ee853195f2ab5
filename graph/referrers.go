// ABOUTME: Builds reverse edges for snapshot traversal
// ABOUTME: Maps objects to their referrers for paths-to-roots

package graph

// Referrers maps each object to the objects whose traces reported it.
type Referrers map[ObjID][]ObjID

// BuildReferrers creates the reverse-edge map for a snapshot.
func BuildReferrers(g Graph) Referrers {
	referrers := make(Referrers)

	g.ForEach(func(obj *Object) {
		for _, target := range obj.Refs {
			referrers[target] = append(referrers[target], obj.ID)
		}
	})

	return referrers
}
