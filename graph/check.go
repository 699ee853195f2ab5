// ABOUTME: Snapshot integrity validation
// ABOUTME: Reports every dangling edge and unknown root in one error

package graph

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Validate checks a snapshot for structural integrity: every reported
// edge must target a known object, every root must exist, and ID 0 must
// not be used. All violations are collected into a single error rather
// than stopping at the first, since a corrupt snapshot usually has many.
// Returns nil for a well-formed snapshot.
func Validate(g Graph) error {
	var result *multierror.Error

	known := make(map[ObjID]bool, g.NumObjects())
	var all []*Object
	g.ForEach(func(obj *Object) {
		known[obj.ID] = true
		all = append(all, obj)
	})
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	for _, obj := range all {
		if obj.ID == 0 {
			result = multierror.Append(result, fmt.Errorf("object uses reserved ID 0"))
		}
		for _, ref := range obj.Refs {
			if !known[ref] {
				result = multierror.Append(result,
					fmt.Errorf("object %d references unknown object %d", obj.ID, ref))
			}
		}
	}

	for _, id := range g.Roots().IDs {
		if !known[id] {
			result = multierror.Append(result, fmt.Errorf("root set names unknown object %d", id))
		}
	}

	return result.ErrorOrNil()
}
