package meshx_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx"
)

// stubMesh is a hand-wired topology for tests that need exact control
// over adjacency, such as path retracing. Unset adjacency kinds answer
// with empty connectivity.
type stubMesh struct {
	name     string
	verts    []r3.Vec
	vadj     map[int][]int // vertex to vertex
	eadj     map[int][]int // edge to edge
	numEdges int
	stale    bool
}

func (m *stubMesh) Topology() (meshx.Topology, error) {
	if m.stale {
		return nil, fmt.Errorf("%w: %q", meshx.ErrStaleHandle, m.name)
	}
	return m, nil
}

func (m *stubMesh) Name() string { return m.name }

func (m *stubMesh) ElementCount(kind meshx.ElementKind) int {
	switch kind {
	case meshx.Vertex:
		return len(m.verts)
	case meshx.Edge:
		return m.numEdges
	}
	return 0
}

func (m *stubMesh) ConnectedVertices(kind meshx.ElementKind, index int) ([]int, error) {
	if kind != meshx.Vertex {
		return nil, fmt.Errorf("%w: stub has no %v to vertex adjacency", meshx.ErrKind, kind)
	}
	return m.vadj[index], nil
}

func (m *stubMesh) ConnectedEdges(kind meshx.ElementKind, index int) ([]int, error) {
	if kind != meshx.Edge {
		return nil, fmt.Errorf("%w: stub has no %v to edge adjacency", meshx.ErrKind, kind)
	}
	return m.eadj[index], nil
}

func (m *stubMesh) ConnectedFaces(kind meshx.ElementKind, index int) ([]int, error) {
	return nil, fmt.Errorf("%w: stub has no faces", meshx.ErrKind)
}

func (m *stubMesh) Position(vertex int) (r3.Vec, error) {
	if vertex < 0 || vertex >= len(m.verts) {
		return r3.Vec{}, fmt.Errorf("%w: vertex %d", meshx.ErrInvalidIndex, vertex)
	}
	return m.verts[vertex], nil
}

func (m *stubMesh) Center(kind meshx.ElementKind, index int) (r3.Vec, error) {
	if kind != meshx.Vertex {
		return r3.Vec{}, fmt.Errorf("%w: stub has centers for vertices only", meshx.ErrKind)
	}
	return m.Position(index)
}

// chainMesh returns n vertices on the X axis connected in a single open
// path 0-1-...-(n-1).
func chainMesh(n int) *stubMesh {
	m := &stubMesh{
		name:  "chain",
		verts: make([]r3.Vec, n),
		vadj:  make(map[int][]int, n),
	}
	for i := 0; i < n; i++ {
		m.verts[i] = r3.Vec{X: float64(i)}
		if i > 0 {
			m.vadj[i] = append(m.vadj[i], i-1)
		}
		if i < n-1 {
			m.vadj[i] = append(m.vadj[i], i+1)
		}
	}
	return m
}

// mapStore is an in-memory SymmetryStore recording write counts.
type mapStore struct {
	tables map[string]map[int]int
	writes int
}

func newMapStore() *mapStore {
	return &mapStore{tables: make(map[string]map[int]int)}
}

func (s *mapStore) ReadSymmetryTable(m meshx.Mesh) (map[int]int, error) {
	table := make(map[int]int, len(s.tables[m.Name()]))
	for vertex, mirror := range s.tables[m.Name()] {
		table[vertex] = mirror
	}
	return table, nil
}

func (s *mapStore) WriteSymmetryTable(m meshx.Mesh, table map[int]int) error {
	s.writes++
	s.tables[m.Name()] = table
	return nil
}

// stubSelection is an in-memory Selection.
type stubSelection struct {
	active []meshx.SelectedComponent
}

func (s *stubSelection) ActiveSelection() ([]meshx.SelectedComponent, error) {
	return s.active, nil
}

func (s *stubSelection) SetActiveSelection(sel []meshx.SelectedComponent) error {
	s.active = sel
	return nil
}
