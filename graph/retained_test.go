// ABOUTME: Tests for retained size computation
// ABOUTME: Validates dominator-based retention over chains, diamonds, and subsets

package graph

import (
	"testing"
)

func TestRetainedSizeChain(t *testing.T) {
	// 1(10) -> 2(20) -> 3(30), rooted at 1
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Size: 10, Refs: []ObjID{2}})
	g.AddObject(&Object{ID: 2, Size: 20, Refs: []ObjID{3}})
	g.AddObject(&Object{ID: 3, Size: 30})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	retained := RetainedSize(g)

	if retained[3] != 30 {
		t.Errorf("Expected leaf to retain 30, got %d", retained[3])
	}
	if retained[2] != 50 {
		t.Errorf("Expected 2 to retain 50, got %d", retained[2])
	}
	if retained[1] != 60 {
		t.Errorf("Expected root to retain 60, got %d", retained[1])
	}
}

func TestRetainedSizeDiamond(t *testing.T) {
	// 1(10) -> 2(20) -> 4(40), 1 -> 3(30) -> 4: shared 4 is retained
	// only by the join 1, not by either branch.
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Size: 10, Refs: []ObjID{2, 3}})
	g.AddObject(&Object{ID: 2, Size: 20, Refs: []ObjID{4}})
	g.AddObject(&Object{ID: 3, Size: 30, Refs: []ObjID{4}})
	g.AddObject(&Object{ID: 4, Size: 40})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	retained := RetainedSize(g)

	if retained[2] != 20 {
		t.Errorf("Expected branch 2 to retain only itself, got %d", retained[2])
	}
	if retained[3] != 30 {
		t.Errorf("Expected branch 3 to retain only itself, got %d", retained[3])
	}
	if retained[1] != 100 {
		t.Errorf("Expected root to retain the whole graph, got %d", retained[1])
	}
}

func TestRetainedSizeOf(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Size: 10, Refs: []ObjID{2}})
	g.AddObject(&Object{ID: 2, Size: 20, Refs: []ObjID{3}})
	g.AddObject(&Object{ID: 3, Size: 30})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	result := RetainedSizeOf(g, []ObjID{2})

	if len(result) != 1 {
		t.Fatalf("Expected exactly 1 result, got %d", len(result))
	}
	if result[2] != 50 {
		t.Errorf("Expected 2 to retain 50, got %d", result[2])
	}
}

func TestRetainedSizeOfIgnoresUnknownAndSuperRoot(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Size: 10})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	result := RetainedSizeOf(g, []ObjID{0, 99})

	if len(result) != 0 {
		t.Errorf("Expected empty result, got %v", result)
	}

	if got := RetainedSizeOf(g, nil); len(got) != 0 {
		t.Errorf("Expected empty result for nil targets, got %v", got)
	}
}
