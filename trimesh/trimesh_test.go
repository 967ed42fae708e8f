package trimesh_test

import (
	"bytes"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx"
	"github.com/soypat/meshx/trimesh"
)

func tetrahedron() []trimesh.Triangle {
	a := r3.Vec{}
	b := r3.Vec{X: 1}
	c := r3.Vec{Y: 1}
	d := r3.Vec{Z: 1}
	return []trimesh.Triangle{
		{a, c, b},
		{a, b, d},
		{b, c, d},
		{a, d, c},
	}
}

func TestFromTrianglesMergesVertices(t *testing.T) {
	m, err := trimesh.FromTriangles(tetrahedron(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.NumVertices(); n != 4 {
		t.Errorf("got %d vertices, want 4", n)
	}
	if n := m.NumEdges(); n != 6 {
		t.Errorf("got %d edges, want 6", n)
	}
	if n := m.NumFaces(); n != 4 {
		t.Errorf("got %d faces, want 4", n)
	}
}

func TestTopologyAdjacency(t *testing.T) {
	m, err := trimesh.FromTriangles(tetrahedron(), 0)
	if err != nil {
		t.Fatal(err)
	}
	// Every tetrahedron vertex touches the three others, three edges
	// and three faces.
	for v := 0; v < m.NumVertices(); v++ {
		verts, err := m.ConnectedVertices(meshx.Vertex, v)
		if err != nil {
			t.Fatal(err)
		}
		if len(verts) != 3 {
			t.Errorf("vertex %d: got %d connected vertices, want 3", v, len(verts))
		}
		edges, err := m.ConnectedEdges(meshx.Vertex, v)
		if err != nil {
			t.Fatal(err)
		}
		if len(edges) != 3 {
			t.Errorf("vertex %d: got %d connected edges, want 3", v, len(edges))
		}
		faces, err := m.ConnectedFaces(meshx.Vertex, v)
		if err != nil {
			t.Fatal(err)
		}
		if len(faces) != 3 {
			t.Errorf("vertex %d: got %d connected faces, want 3", v, len(faces))
		}
	}
	// Every edge joins two faces on a closed surface, and every face
	// borders the three others.
	for e := 0; e < m.NumEdges(); e++ {
		faces, err := m.ConnectedFaces(meshx.Edge, e)
		if err != nil {
			t.Fatal(err)
		}
		if len(faces) != 2 {
			t.Errorf("edge %d: got %d incident faces, want 2", e, len(faces))
		}
		ends, err := m.ConnectedVertices(meshx.Edge, e)
		if err != nil {
			t.Fatal(err)
		}
		if len(ends) != 2 {
			t.Errorf("edge %d: got %d endpoints, want 2", e, len(ends))
		}
	}
	for f := 0; f < m.NumFaces(); f++ {
		faces, err := m.ConnectedFaces(meshx.Face, f)
		if err != nil {
			t.Fatal(err)
		}
		if len(faces) != 3 {
			t.Errorf("face %d: got %d neighboring faces, want 3", f, len(faces))
		}
	}
}

func TestTopologyKindAndIndexErrors(t *testing.T) {
	m, err := trimesh.FromTriangles(tetrahedron(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ConnectedVertices(meshx.FaceVertex, 0); err == nil {
		t.Error("expected error for face-vertex connectivity")
	}
	if _, err := m.ConnectedVertices(meshx.Vertex, 99); err == nil {
		t.Error("expected error for out of range index")
	}
	if _, err := m.Position(-1); err == nil {
		t.Error("expected error for negative vertex index")
	}
}

func TestCenters(t *testing.T) {
	m, err := trimesh.FromTriangles(tetrahedron(), 0)
	if err != nil {
		t.Fatal(err)
	}
	// Vertex center is its position.
	pos, err := m.Position(0)
	if err != nil {
		t.Fatal(err)
	}
	center, err := m.Center(meshx.Vertex, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pos != center {
		t.Errorf("vertex center %v != position %v", center, pos)
	}
	// Face centroid of face 0 lies in the z=0 plane.
	center, err = m.Center(meshx.Face, 0)
	if err != nil {
		t.Fatal(err)
	}
	if center.Z != 0 {
		t.Errorf("face 0 centroid off plane: %v", center)
	}
}

func TestDegenerateTriangleRejected(t *testing.T) {
	bad := []trimesh.Triangle{
		{r3.Vec{}, r3.Vec{}, r3.Vec{Y: 1}},
	}
	if _, err := trimesh.FromTriangles(bad, 1e-6); err == nil {
		t.Error("expected degenerate triangle error")
	}
	if _, err := trimesh.FromTriangles(nil, 0); err == nil {
		t.Error("expected error for empty model")
	}
	if _, err := trimesh.FromTriangles(tetrahedron(), 10); err == nil {
		t.Error("expected error for oversized vertex tolerance")
	}
}

func TestSTLRoundTrip(t *testing.T) {
	model := tetrahedron()
	var buf bytes.Buffer
	if err := trimesh.WriteSTL(&buf, model); err != nil {
		t.Fatal(err)
	}
	got, err := trimesh.ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("got %d triangles, want %d", len(got), len(model))
	}
	m, err := trimesh.FromTriangles(got, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumVertices() != 4 || m.NumEdges() != 6 || m.NumFaces() != 4 {
		t.Errorf("adjacency lost in round trip: %d vertices, %d edges, %d faces",
			m.NumVertices(), m.NumEdges(), m.NumFaces())
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := trimesh.WriteSTL(&buf, nil); err == nil {
		t.Error("expected error writing empty model")
	}
}
