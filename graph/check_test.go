// ABOUTME: Tests for snapshot integrity validation
// ABOUTME: Dangling edges and unknown roots are reported together

package graph

import (
	"strings"
	"testing"
)

func TestValidateWellFormed(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Refs: []ObjID{2}})
	g.AddObject(&Object{ID: 2})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	if err := Validate(g); err != nil {
		t.Errorf("Expected valid snapshot, got %v", err)
	}
}

func TestValidateDanglingRef(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Refs: []ObjID{99}})
	g.SetRoots(Roots{IDs: []ObjID{1}})

	err := Validate(g)
	if err == nil {
		t.Fatal("Expected error for dangling ref")
	}
	if !strings.Contains(err.Error(), "unknown object 99") {
		t.Errorf("Expected dangling ref in error, got %v", err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 1, Refs: []ObjID{50, 60}})
	g.SetRoots(Roots{IDs: []ObjID{1, 70}})

	err := Validate(g)
	if err == nil {
		t.Fatal("Expected errors")
	}

	msg := err.Error()
	for _, want := range []string{"unknown object 50", "unknown object 60", "unknown object 70"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in aggregated error, got %v", want, msg)
		}
	}
}

func TestValidateReservedID(t *testing.T) {
	g := NewMemGraph()
	g.AddObject(&Object{ID: 0})

	err := Validate(g)
	if err == nil || !strings.Contains(err.Error(), "reserved ID 0") {
		t.Errorf("Expected reserved-ID error, got %v", err)
	}
}
