// ABOUTME: JSON snapshot dump format: deterministic writer plus gjson reader
// ABOUTME: The default format produced for heap snapshots

package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/prateek/marksweep/graph"
)

// JSONFormat reads and writes snapshot dumps as JSON. The layout is a
// single document with an "objects" array and a "roots" array.
type JSONFormat struct{}

// jsonDump is the top-level document layout.
type jsonDump struct {
	Objects []jsonObject  `json:"objects"`
	Roots   []graph.ObjID `json:"roots"`
}

// jsonObject is one snapshot object in the dump.
type jsonObject struct {
	ID        graph.ObjID   `json:"id"`
	Type      string        `json:"type,omitempty"`
	Size      uint64        `json:"size"`
	Refs      []graph.ObjID `json:"refs"`
	RootCount uint32        `json:"root_count"`
}

// Write serializes a snapshot to the JSON dump format. Objects are
// ordered by ID so identical snapshots produce identical dumps.
func Write(w io.Writer, g graph.Graph) error {
	d := jsonDump{
		Objects: make([]jsonObject, 0, g.NumObjects()),
		Roots:   []graph.ObjID{},
	}

	g.ForEach(func(obj *graph.Object) {
		refs := obj.Refs
		if refs == nil {
			refs = []graph.ObjID{}
		}
		d.Objects = append(d.Objects, jsonObject{
			ID:        obj.ID,
			Type:      obj.Type,
			Size:      obj.Size,
			Refs:      refs,
			RootCount: obj.RootCount,
		})
	})
	sort.Slice(d.Objects, func(i, j int) bool { return d.Objects[i].ID < d.Objects[j].ID })

	roots := append([]graph.ObjID{}, g.Roots().IDs...)
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	d.Roots = roots

	enc := json.NewEncoder(w)
	return enc.Encode(d)
}

// CanParse sniffs for a JSON document carrying an "objects" key.
func (p *JSONFormat) CanParse(r io.Reader) bool {
	preview := make([]byte, 1024)
	n, err := r.Read(preview)
	if err != nil && err != io.EOF {
		return false
	}
	if n == 0 {
		return false
	}

	head := bytes.TrimSpace(preview[:n])
	if len(head) == 0 || head[0] != '{' {
		return false
	}
	return bytes.Contains(head, []byte(`"objects"`))
}

// Parse reads a JSON dump and rebuilds the snapshot graph.
func (p *JSONFormat) Parse(r io.Reader) (graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json dump")
	}

	doc := gjson.ParseBytes(data)
	objects := doc.Get("objects")
	if !objects.Exists() || !objects.IsArray() {
		return nil, fmt.Errorf("dump missing objects array")
	}

	g := graph.NewMemGraph()

	var parseErr error
	index := 0
	objects.ForEach(func(_, value gjson.Result) bool {
		id := value.Get("id").Uint()
		if id == 0 {
			parseErr = fmt.Errorf("object at index %d missing ID", index)
			return false
		}

		obj := &graph.Object{
			ID:        graph.ObjID(id),
			Type:      value.Get("type").String(),
			Size:      value.Get("size").Uint(),
			Refs:      []graph.ObjID{},
			RootCount: uint32(value.Get("root_count").Uint()),
		}
		value.Get("refs").ForEach(func(_, ref gjson.Result) bool {
			obj.Refs = append(obj.Refs, graph.ObjID(ref.Uint()))
			return true
		})

		g.AddObject(obj)
		index++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	roots := graph.Roots{IDs: []graph.ObjID{}}
	doc.Get("roots").ForEach(func(_, root gjson.Result) bool {
		roots.IDs = append(roots.IDs, graph.ObjID(root.Uint()))
		return true
	})
	g.SetRoots(roots)

	return g, nil
}

// init registers the JSON format parser
func init() {
	Register(&JSONFormat{})
}
