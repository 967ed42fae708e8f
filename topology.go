package meshx

import "gonum.org/v1/gonum/spatial/r3"

// Topology resolves connectivity and geometry queries for a single mesh.
// The source element kind is passed explicitly; implementations return an
// error wrapping ErrKind for kinds they cannot iterate (FaceVertex) and
// ErrInvalidIndex for indices outside the element count.
//
// Topology is assumed immutable for the duration of any single traversal.
// Mutating the underlying mesh between component construction and use
// leaves capacities stale and results undefined; that contract is the
// caller's, not checked at runtime.
type Topology interface {
	// ElementCount returns the total number of elements of the kind.
	ElementCount(kind ElementKind) int
	// ConnectedVertices returns the vertices directly touching the
	// element: edge neighbors' opposite endpoints for a vertex, both
	// endpoints for an edge, corner vertices for a face.
	ConnectedVertices(kind ElementKind, index int) ([]int, error)
	// ConnectedEdges returns the edges directly touching the element:
	// incident edges for a vertex, edges sharing a vertex for an edge,
	// boundary edges for a face.
	ConnectedEdges(kind ElementKind, index int) ([]int, error)
	// ConnectedFaces returns the faces directly touching the element:
	// incident faces for a vertex or edge, faces sharing an edge for a
	// face.
	ConnectedFaces(kind ElementKind, index int) ([]int, error)
	// Position returns the position of a vertex.
	Position(vertex int) (r3.Vec, error)
	// Center returns the representative point of an element: the vertex
	// position, edge midpoint or face centroid.
	Center(kind ElementKind, index int) (r3.Vec, error)
}

// Mesh is a weak reference to an externally owned mesh. Components hold a
// Mesh but never own its lifetime; Topology is resolved lazily on each
// query so that a deleted mesh surfaces ErrStaleHandle instead of
// dangling.
type Mesh interface {
	// Topology resolves the mesh's topology accessor, or fails with an
	// error wrapping ErrStaleHandle once the mesh has been removed.
	Topology() (Topology, error)
	// Name returns a stable identity for the mesh, used to key persisted
	// state such as the symmetry table.
	Name() string
}

// MeshResolver resolves mesh names from selection strings.
type MeshResolver interface {
	MeshByName(name string) (Mesh, error)
}

// SelectedComponent is one entry of the host application's active
// component selection. Weights is populated only for soft selections;
// absent weights default to 1.
type SelectedComponent struct {
	Mesh    Mesh
	Kind    ElementKind
	Indices []int
	Weights map[int]float64
}

// Selection reads and writes the host application's active component
// selection.
type Selection interface {
	ActiveSelection() ([]SelectedComponent, error)
	SetActiveSelection(sel []SelectedComponent) error
}

// SymmetryStore persists per-mesh symmetry tables keyed by mesh identity.
// A mesh with no stored table reads as an empty map, not an error.
type SymmetryStore interface {
	ReadSymmetryTable(m Mesh) (map[int]int, error)
	WriteSymmetryTable(m Mesh, table map[int]int) error
}
