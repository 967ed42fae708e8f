package meshx

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/meshx/internal/d3"
)

// kd-tree plumbing over vertex positions for the spatial queries in
// symmetry.go.

type vertexPoint struct {
	idx int
	pos r3.Vec
}

func (p *vertexPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*vertexPoint)
	switch d {
	case 0:
		return p.pos.X - q.pos.X
	case 1:
		return p.pos.Y - q.pos.Y
	case 2:
		return p.pos.Z - q.pos.Z
	}
	panic("unreachable")
}

func (p *vertexPoint) Dims() int { return 3 }

func (p *vertexPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(*vertexPoint)
	return r3.Norm2(r3.Sub(p.pos, q.pos))
}

type vertexPoints []vertexPoint

// Index returns the ith point of the list.
func (v vertexPoints) Index(i int) kdtree.Comparable { return &v[i] }

// Len returns the length of the list.
func (v vertexPoints) Len() int { return len(v) }

// Pivot partitions the list based on the dimension specified.
func (v vertexPoints) Pivot(d kdtree.Dim) int {
	p := pointPlane{dim: d, points: v}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half open indexing
// equivalent to built-in slice indexing.
func (v vertexPoints) Slice(start, end int) kdtree.Interface { return v[start:end] }

// Bounds implements the kdtree.Bounder interface.
func (v vertexPoints) Bounds() *kdtree.Bounding {
	min := vertexPoint{pos: d3.Elem(math.MaxFloat64)}
	max := vertexPoint{pos: d3.Elem(-math.MaxFloat64)}
	for _, p := range v {
		min.pos = d3.MinElem(min.pos, p.pos)
		max.pos = d3.MaxElem(max.pos, p.pos)
	}
	return &kdtree.Bounding{Min: &min, Max: &max}
}

type pointPlane struct {
	dim    kdtree.Dim
	points vertexPoints
}

func (p pointPlane) Less(i, j int) bool {
	return p.points[i].Compare(&p.points[j], p.dim) < 0
}
func (p pointPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p pointPlane) Len() int { return len(p.points) }
func (p pointPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
