// Package meshx implements a component algebra for polygonal meshes:
// named, ordered subsets of a mesh's vertices, edges and faces with
// constant-time membership, set operations, connectivity traversal and
// a persisted mirror-symmetry correspondence table.
//
// The package does not derive mesh connectivity itself. Connectivity,
// element positions and counts are supplied by a Topology implementation
// (see the trimesh package for one built from a triangle soup), and the
// host application's scene state is reached through the Mesh, Selection
// and SymmetryStore interfaces.
package meshx

import "strconv"

// ElementKind enumerates the single-indexed component kinds of a mesh.
type ElementKind int

const (
	// Vertex components index mesh vertices.
	Vertex ElementKind = iota
	// Edge components index mesh edges.
	Edge
	// Face components index mesh polygons.
	Face
	// FaceVertex components index per-face corners. They participate in
	// the set algebra but have no connectivity queries.
	FaceVertex
)

func (k ElementKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Edge:
		return "edge"
	case Face:
		return "face"
	case FaceVertex:
		return "face-vertex"
	}
	return "ElementKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ElementKind) valid() bool {
	return k >= Vertex && k <= FaceVertex
}

// connectable reports whether the kind supports connectivity queries.
func (k ElementKind) connectable() bool {
	return k == Vertex || k == Edge || k == Face
}
