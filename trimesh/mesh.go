// Package trimesh builds an indexed mesh with full element connectivity
// from a triangle soup and implements the meshx.Topology accessor over
// it. Triangle models such as STL carry no shared vertices; vertices are
// merged on a tolerance grid during construction.
package trimesh

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx/internal/d3"
)

// Triangle is a triangle in 3D space defined by its three vertices.
type Triangle [3]r3.Vec

// Normal returns the triangle's unit normal following the right-hand
// rule on vertex winding.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Centroid returns the mean of the triangle vertices.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(r3.Add(t[0], t[1]), t[2]))
}

func (t Triangle) degenerate(tol float64) bool {
	// check for identical vertices.
	return equalWithin(t[0], t[1], tol) ||
		equalWithin(t[1], t[2], tol) ||
		equalWithin(t[2], t[0], tol)
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Mesh is an indexed triangle mesh with per-element incidence tables.
// Vertex, edge and face indices are dense and stable for the life of the
// mesh; edges are stored with the lower vertex index first.
type Mesh struct {
	bb       d3.Box
	vertices []r3.Vec
	faces    [][3]int // vertex indices per face
	edges    [][2]int // vertex pair per edge, lower index first

	faceEdges   [][3]int // edge indices per face
	vertexEdges [][]int  // incident edges per vertex
	vertexFaces [][]int  // incident faces per vertex
	edgeFaces   [][]int  // incident faces per edge
}

// FromTriangles builds a mesh from a triangle soup, merging vertices
// closer than vertexTol. vertexTol should be of the order of 1/1000th of
// the smallest triangle side; passing 0 infers it from the model.
// Degenerate triangles (repeated vertices within tolerance) are
// rejected.
func FromTriangles(model []Triangle, vertexTolOrZero float64) (*Mesh, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	bb := d3.EmptyBox()
	minSide2 := math.MaxFloat64
	maxSide2 := -math.MaxFloat64
	for i := range model {
		for j, vert := range model[i] {
			bb = bb.Include(vert)
			side2 := r3.Norm2(r3.Sub(model[i][(j+1)%3], vert))
			minSide2 = math.Min(minSide2, side2)
			maxSide2 = math.Max(maxSide2, side2)
		}
	}
	suggested := math.Sqrt(minSide2) / 256
	tol := vertexTolOrZero
	if tol > math.Sqrt(maxSide2)/2 {
		return nil, fmt.Errorf("vertex tolerance too large to build mesh, suggested tolerance: %g", suggested)
	}
	if tol == 0 {
		tol = suggested
	}
	size := bb.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	div := int64(maxDim/tol + 1e-12)
	if div <= 0 {
		return nil, errors.New("tolerance larger than model size")
	}
	if div > math.MaxInt64/2 {
		return nil, errors.New("tolerance too small. overflowed int64")
	}

	m := &Mesh{
		bb:    bb,
		faces: make([][3]int, 0, len(model)),
	}
	// vertex and edge index caches in resolution space.
	vertexCache := make(map[[3]int64]int)
	edgeCache := make(map[[2]int]int)
	ri := 1 / tol
	for i, tri := range model {
		if tri.degenerate(tol) {
			return nil, fmt.Errorf("triangle %d is degenerate", i)
		}
		var face [3]int
		for j, vert := range tri {
			// Scale vert to be integer in resolution-space.
			v := r3.Scale(ri, vert)
			vi := [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
			vertexIdx, ok := vertexCache[vi]
			if !ok {
				vertexIdx = len(m.vertices)
				vertexCache[vi] = vertexIdx
				m.vertices = append(m.vertices, vert)
			}
			face[j] = vertexIdx
		}
		m.faces = append(m.faces, face)
		var faceEdges [3]int
		for j := range face {
			edge := [2]int{face[j], face[(j+1)%3]}
			if edge[0] > edge[1] {
				edge[0], edge[1] = edge[1], edge[0]
			}
			edgeIdx, ok := edgeCache[edge]
			if !ok {
				edgeIdx = len(m.edges)
				edgeCache[edge] = edgeIdx
				m.edges = append(m.edges, edge)
			}
			faceEdges[j] = edgeIdx
		}
		m.faceEdges = append(m.faceEdges, faceEdges)
	}
	m.buildIncidence()
	return m, nil
}

// buildIncidence fills the per-vertex and per-edge incidence tables from
// the face and edge lists.
func (m *Mesh) buildIncidence() {
	m.vertexEdges = make([][]int, len(m.vertices))
	m.vertexFaces = make([][]int, len(m.vertices))
	m.edgeFaces = make([][]int, len(m.edges))
	for edgeIdx, edge := range m.edges {
		m.vertexEdges[edge[0]] = append(m.vertexEdges[edge[0]], edgeIdx)
		m.vertexEdges[edge[1]] = append(m.vertexEdges[edge[1]], edgeIdx)
	}
	for faceIdx, face := range m.faces {
		for _, vertexIdx := range face {
			m.vertexFaces[vertexIdx] = append(m.vertexFaces[vertexIdx], faceIdx)
		}
		for _, edgeIdx := range m.faceEdges[faceIdx] {
			m.edgeFaces[edgeIdx] = append(m.edgeFaces[edgeIdx], faceIdx)
		}
	}
}

// NumVertices returns the merged vertex count.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumEdges returns the unique edge count.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() d3.Box { return m.bb }

// Triangles reconstructs the triangle list from the indexed mesh.
func (m *Mesh) Triangles() []Triangle {
	model := make([]Triangle, len(m.faces))
	for i, face := range m.faces {
		model[i] = Triangle{m.vertices[face[0]], m.vertices[face[1]], m.vertices[face[2]]}
	}
	return model
}
