package meshx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soypat/meshx"
	"github.com/soypat/meshx/scene"
)

func TestParseSelection(t *testing.T) {
	sc, _ := register(t, "body", quadMesh(t))

	c, err := meshx.ParseSelection(sc, "body.vtx[0:2]")
	require.NoError(t, err)
	assert.Equal(t, meshx.Vertex, c.Kind())
	assert.Equal(t, []int{0, 1, 2}, c.Elements(), "ranges are inclusive")

	c, err = meshx.ParseSelection(sc, "body.e[4]")
	require.NoError(t, err)
	assert.Equal(t, meshx.Edge, c.Kind())
	assert.Equal(t, []int{4}, c.Elements())

	c, err = meshx.ParseSelection(sc, "body.f[0,1]")
	require.NoError(t, err)
	assert.Equal(t, meshx.Face, c.Kind())
	assert.Equal(t, []int{0, 1}, c.Elements())

	c, err = meshx.ParseSelection(sc, "body.vtx[]")
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestParseSelectionErrors(t *testing.T) {
	sc, _ := register(t, "body", quadMesh(t))
	for _, s := range []string{
		"body",               // no component
		"body.vtx",           // no brackets
		"body.uv[0]",         // unknown kind token
		"body.vtx[2:0]",      // inverted range
		"body.vtx[x]",        // not an index
		".vtx[0]",            // no mesh name
		"body.vtx[0",         // unterminated
	} {
		_, err := meshx.ParseSelection(sc, s)
		assert.ErrorIs(t, err, meshx.ErrKind, s)
	}
	_, err := meshx.ParseSelection(sc, "ghost.vtx[0]")
	assert.ErrorIs(t, err, meshx.ErrUnknownMesh)
	_, err = meshx.ParseSelection(sc, "body.vtx[9]")
	assert.ErrorIs(t, err, meshx.ErrInvalidIndex)
}

func TestSelectionStringCompression(t *testing.T) {
	sc, _ := register(t, "body", quadMesh(t))
	c, err := meshx.ParseSelection(sc, "body.vtx[3,0,1]")
	require.NoError(t, err)
	s, err := c.SelectionString()
	require.NoError(t, err)
	assert.Equal(t, "body.vtx[0:1,3]", s)

	// Round trip through the string form preserves the element set.
	back, err := meshx.ParseSelection(sc, s)
	require.NoError(t, err)
	assert.Equal(t, c.Sorted(), back.Sorted())
}

func TestSelectionStringFaceVertex(t *testing.T) {
	_, mesh := register(t, "body", quadMesh(t))
	c, err := meshx.NewComponent(mesh, meshx.FaceVertex, 0)
	require.NoError(t, err)
	_, err = c.SelectionString()
	assert.ErrorIs(t, err, meshx.ErrKind)
}

var _ meshx.MeshResolver = (*scene.Scene)(nil)
