package trimesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx"
)

// Mesh implements meshx.Topology.
var _ meshx.Topology = (*Mesh)(nil)

// ElementCount returns the total number of elements of the kind.
// Face-vertex components index per-face corners and share the face
// ceiling.
func (m *Mesh) ElementCount(kind meshx.ElementKind) int {
	switch kind {
	case meshx.Vertex:
		return len(m.vertices)
	case meshx.Edge:
		return len(m.edges)
	case meshx.Face, meshx.FaceVertex:
		return len(m.faces)
	}
	return 0
}

// ConnectedVertices returns the vertices directly touching the element.
func (m *Mesh) ConnectedVertices(kind meshx.ElementKind, index int) ([]int, error) {
	if err := m.check(kind, index); err != nil {
		return nil, err
	}
	switch kind {
	case meshx.Vertex:
		// Opposite endpoints of the incident edges.
		connected := make([]int, 0, len(m.vertexEdges[index]))
		for _, edgeIdx := range m.vertexEdges[index] {
			edge := m.edges[edgeIdx]
			if edge[0] == index {
				connected = append(connected, edge[1])
			} else {
				connected = append(connected, edge[0])
			}
		}
		return connected, nil
	case meshx.Edge:
		edge := m.edges[index]
		return []int{edge[0], edge[1]}, nil
	case meshx.Face:
		face := m.faces[index]
		return []int{face[0], face[1], face[2]}, nil
	}
	return nil, fmt.Errorf("%w: no vertex connectivity for %v elements", meshx.ErrKind, kind)
}

// ConnectedEdges returns the edges directly touching the element. For an
// edge these are the edges sharing either endpoint; for a face its own
// boundary edges.
func (m *Mesh) ConnectedEdges(kind meshx.ElementKind, index int) ([]int, error) {
	if err := m.check(kind, index); err != nil {
		return nil, err
	}
	switch kind {
	case meshx.Vertex:
		return append([]int(nil), m.vertexEdges[index]...), nil
	case meshx.Edge:
		edge := m.edges[index]
		var connected []int
		for _, endpoint := range edge {
			for _, edgeIdx := range m.vertexEdges[endpoint] {
				if edgeIdx != index {
					connected = append(connected, edgeIdx)
				}
			}
		}
		return connected, nil
	case meshx.Face:
		fe := m.faceEdges[index]
		return []int{fe[0], fe[1], fe[2]}, nil
	}
	return nil, fmt.Errorf("%w: no edge connectivity for %v elements", meshx.ErrKind, kind)
}

// ConnectedFaces returns the faces directly touching the element. For a
// face these are the faces sharing one of its edges.
func (m *Mesh) ConnectedFaces(kind meshx.ElementKind, index int) ([]int, error) {
	if err := m.check(kind, index); err != nil {
		return nil, err
	}
	switch kind {
	case meshx.Vertex:
		return append([]int(nil), m.vertexFaces[index]...), nil
	case meshx.Edge:
		return append([]int(nil), m.edgeFaces[index]...), nil
	case meshx.Face:
		var connected []int
		for _, edgeIdx := range m.faceEdges[index] {
			for _, faceIdx := range m.edgeFaces[edgeIdx] {
				if faceIdx != index {
					connected = append(connected, faceIdx)
				}
			}
		}
		return connected, nil
	}
	return nil, fmt.Errorf("%w: no face connectivity for %v elements", meshx.ErrKind, kind)
}

// Position returns the position of a vertex.
func (m *Mesh) Position(vertex int) (r3.Vec, error) {
	if vertex < 0 || vertex >= len(m.vertices) {
		return r3.Vec{}, fmt.Errorf("%w: vertex %d not in [0, %d)", meshx.ErrInvalidIndex, vertex, len(m.vertices))
	}
	return m.vertices[vertex], nil
}

// Center returns the vertex position, edge midpoint or face centroid.
func (m *Mesh) Center(kind meshx.ElementKind, index int) (r3.Vec, error) {
	if err := m.check(kind, index); err != nil {
		return r3.Vec{}, err
	}
	switch kind {
	case meshx.Vertex:
		return m.vertices[index], nil
	case meshx.Edge:
		edge := m.edges[index]
		return r3.Scale(0.5, r3.Add(m.vertices[edge[0]], m.vertices[edge[1]])), nil
	case meshx.Face:
		face := m.faces[index]
		return Triangle{m.vertices[face[0]], m.vertices[face[1]], m.vertices[face[2]]}.Centroid(), nil
	}
	return r3.Vec{}, fmt.Errorf("%w: no center for %v elements", meshx.ErrKind, kind)
}

// check validates the source kind and index for connectivity queries.
func (m *Mesh) check(kind meshx.ElementKind, index int) error {
	switch kind {
	case meshx.Vertex, meshx.Edge, meshx.Face:
		if count := m.ElementCount(kind); index < 0 || index >= count {
			return fmt.Errorf("%w: %v %d not in [0, %d)", meshx.ErrInvalidIndex, kind, index, count)
		}
		return nil
	}
	return fmt.Errorf("%w: cannot iterate %v elements", meshx.ErrKind, kind)
}
