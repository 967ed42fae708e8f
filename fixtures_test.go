package meshx_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx"
	"github.com/soypat/meshx/scene"
	"github.com/soypat/meshx/trimesh"
)

// quadMesh builds two triangles sharing an edge:
//
//	v2----v3        faces: f0=(v0,v1,v2)  f1=(v1,v3,v2)
//	| \ f1 |        edges: e0=(v0,v1) e1=(v1,v2) e2=(v0,v2)
//	| f0 \ |               e3=(v1,v3) e4=(v2,v3)
//	v0----v1
func quadMesh(t *testing.T) *trimesh.Mesh {
	t.Helper()
	v0 := r3.Vec{}
	v1 := r3.Vec{X: 1}
	v2 := r3.Vec{Y: 1}
	v3 := r3.Vec{X: 1, Y: 1}
	m, err := trimesh.FromTriangles([]trimesh.Triangle{
		{v0, v1, v2},
		{v1, v3, v2},
	}, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 5, m.NumEdges())
	require.Equal(t, 2, m.NumFaces())
	return m
}

// disjointTrianglesMesh builds two triangles sharing no vertices: two
// shells of three vertices each.
func disjointTrianglesMesh(t *testing.T) *trimesh.Mesh {
	t.Helper()
	m, err := trimesh.FromTriangles([]trimesh.Triangle{
		{r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{r3.Vec{X: 5}, r3.Vec{X: 6}, r3.Vec{X: 5, Y: 1}},
	}, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 6, m.NumVertices())
	return m
}

// mirroredTrianglesMesh builds a triangle and its reflection across the
// YZ plane. Vertex i mirrors to vertex i+3.
func mirroredTrianglesMesh(t *testing.T) *trimesh.Mesh {
	t.Helper()
	m, err := trimesh.FromTriangles([]trimesh.Triangle{
		{r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{X: 1.5, Y: 1}},
		{r3.Vec{X: -1}, r3.Vec{X: -2}, r3.Vec{X: -1.5, Y: 1}},
	}, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 6, m.NumVertices())
	return m
}

// register adds the mesh to a fresh scene and returns both.
func register(t *testing.T, name string, m meshx.Topology) (*scene.Scene, meshx.Mesh) {
	t.Helper()
	sc := scene.New()
	h, err := sc.Add(name, m)
	require.NoError(t, err)
	return sc, h
}
