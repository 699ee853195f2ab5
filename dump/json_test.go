// ABOUTME: Tests for the JSON snapshot dump format
// ABOUTME: Round-trips, determinism, detection, and malformed input

package dump

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/marksweep/graph"
)

func sampleGraph() *graph.MemGraph {
	g := graph.NewMemGraph()
	g.AddObject(&graph.Object{ID: 1, Type: "node", Size: 48, Refs: []graph.ObjID{2, 3}, RootCount: 1})
	g.AddObject(&graph.Object{ID: 2, Type: "node", Size: 48, Refs: []graph.ObjID{}})
	g.AddObject(&graph.Object{ID: 3, Type: "leaf", Size: 16, Refs: []graph.ObjID{}})
	g.SetRoots(graph.Roots{IDs: []graph.ObjID{1}})
	return g
}

// flatten extracts a comparable view of a graph, objects ordered by ID.
func flatten(g graph.Graph) ([]graph.Object, []graph.ObjID) {
	var objs []graph.Object
	g.ForEach(func(o *graph.Object) {
		objs = append(objs, *o)
	})
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })

	roots := append([]graph.ObjID{}, g.Roots().IDs...)
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	return objs, roots
}

func TestJSONRoundTrip(t *testing.T) {
	g := sampleGraph()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	parsed, err := Open(&buf)
	require.NoError(t, err)

	wantObjs, wantRoots := flatten(g)
	gotObjs, gotRoots := flatten(parsed)

	if diff := cmp.Diff(wantObjs, gotObjs); diff != "" {
		t.Errorf("objects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRoots, gotRoots); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	g := sampleGraph()

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, g))
	require.NoError(t, Write(&second, g))

	assert.Equal(t, first.String(), second.String())
}

func TestCanParse(t *testing.T) {
	p := &JSONFormat{}

	assert.True(t, p.CanParse(strings.NewReader(`{"objects": [], "roots": []}`)))
	assert.True(t, p.CanParse(strings.NewReader("  \n{\"objects\":[{\"id\":1}]}")))
	assert.False(t, p.CanParse(strings.NewReader("")))
	assert.False(t, p.CanParse(strings.NewReader("not json")))
	assert.False(t, p.CanParse(strings.NewReader(`["objects"]`)))
	assert.False(t, p.CanParse(strings.NewReader(`{"rules": []}`)))
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	p := &JSONFormat{}

	_, err := p.Parse(strings.NewReader(`{"objects": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestParseRejectsMissingObjects(t *testing.T) {
	p := &JSONFormat{}

	_, err := p.Parse(strings.NewReader(`{"roots": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing objects")
}

func TestParseRejectsMissingID(t *testing.T) {
	p := &JSONFormat{}

	_, err := p.Parse(strings.NewReader(`{"objects": [{"size": 8}], "roots": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing ID")
}

func TestParseEmptyDump(t *testing.T) {
	p := &JSONFormat{}

	g, err := p.Parse(strings.NewReader(`{"objects": [], "roots": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumObjects())
	assert.Empty(t, g.Roots().IDs)
}
