package meshx

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Component is an ordered subset of one element kind on a specific mesh.
// Components are cheap value objects created per operation; two
// components over the same mesh never share state. The mesh reference is
// weak: topology is resolved on each query and fails with ErrStaleHandle
// once the mesh is gone.
type Component struct {
	mesh    Mesh
	kind    ElementKind
	set     *IndexSet
	weights map[int]float64
}

// NewComponent returns a component of the given kind holding indices.
// Capacity is taken from the mesh's current element count for the kind.
func NewComponent(mesh Mesh, kind ElementKind, indices ...int) (*Component, error) {
	if mesh == nil {
		panic("meshx: nil mesh")
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %v", ErrKind, kind)
	}
	topo, err := mesh.Topology()
	if err != nil {
		return nil, err
	}
	c := &Component{
		mesh: mesh,
		kind: kind,
		set:  NewIndexSet(topo.ElementCount(kind)),
	}
	if err := c.set.Append(indices...); err != nil {
		return nil, err
	}
	return c, nil
}

// NewWeightedComponent returns a component whose elements carry soft
// selection weights in [0, 1]. Elements appended later default to
// weight 1.
func NewWeightedComponent(mesh Mesh, kind ElementKind, weights map[int]float64) (*Component, error) {
	indices := make([]int, 0, len(weights))
	for idx := range weights {
		indices = append(indices, idx)
	}
	c, err := NewComponent(mesh, kind, indices...)
	if err != nil {
		return nil, err
	}
	c.weights = make(map[int]float64, len(weights))
	for idx, w := range weights {
		c.weights[idx] = w
	}
	return c, nil
}

// FromSelection builds a component from the active selection. The
// selection must contain exactly one component; anything else fails with
// ErrSelection.
func FromSelection(sel Selection) (*Component, error) {
	active, err := sel.ActiveSelection()
	if err != nil {
		return nil, err
	}
	if len(active) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSelection, len(active))
	}
	entry := active[0]
	if len(entry.Weights) > 0 {
		return NewWeightedComponent(entry.Mesh, entry.Kind, entry.Weights)
	}
	return NewComponent(entry.Mesh, entry.Kind, entry.Indices...)
}

// Mesh returns the weak mesh reference.
func (c *Component) Mesh() Mesh { return c.mesh }

// Kind returns the component's element kind.
func (c *Component) Kind() ElementKind { return c.kind }

// Len returns the number of elements.
func (c *Component) Len() int { return c.set.Len() }

// Cap returns the element count ceiling captured at construction.
func (c *Component) Cap() int { return c.set.Cap() }

// Elements returns the elements in insertion order.
func (c *Component) Elements() []int { return c.set.Elements() }

// Sorted returns the elements in ascending order.
func (c *Component) Sorted() []int { return c.set.Sorted() }

// Contains reports whether every supplied index is an element.
func (c *Component) Contains(indices ...int) bool { return c.set.Contains(indices...) }

// Append adds elements, skipping duplicates. See IndexSet.Append for the
// partial-failure contract.
func (c *Component) Append(indices ...int) error { return c.set.Append(indices...) }

// Extend appends a whole slice of elements.
func (c *Component) Extend(indices []int) error { return c.set.Append(indices...) }

// Remove deletes elements; absent indices are skipped.
func (c *Component) Remove(indices ...int) {
	c.set.Remove(indices...)
	for _, idx := range indices {
		delete(c.weights, idx)
	}
}

// Intersection returns the subsequence of indices that are elements,
// preserving the caller's order.
func (c *Component) Intersection(indices []int) []int { return c.set.Intersection(indices) }

// Difference returns the subsequence of indices that are not elements,
// preserving the caller's order.
func (c *Component) Difference(indices []int) []int { return c.set.Difference(indices) }

// HasWeights reports whether the component was built from a soft
// selection.
func (c *Component) HasWeights() bool { return len(c.weights) > 0 }

// Weight returns the soft selection weight of an element, defaulting
// to 1.
func (c *Component) Weight(index int) float64 {
	if w, ok := c.weights[index]; ok {
		return w
	}
	return 1
}

// Weights returns a copy of the soft selection weights, or nil when the
// component has none.
func (c *Component) Weights() map[int]float64 {
	if c.weights == nil {
		return nil
	}
	weights := make(map[int]float64, len(c.weights))
	for idx, w := range c.weights {
		weights[idx] = w
	}
	return weights
}

// Clone returns an independent copy sharing no state with c.
func (c *Component) Clone() *Component {
	clone := &Component{mesh: c.mesh, kind: c.kind, set: c.set.Clone()}
	if c.weights != nil {
		clone.weights = make(map[int]float64, len(c.weights))
		for idx, w := range c.weights {
			clone.weights[idx] = w
		}
	}
	return clone
}

// Connected returns the target-kind elements directly touching each
// element, concatenated in element order. The result is deliberately not
// deduplicated; duplicates collapse on the next IndexSet insertion.
func (c *Component) Connected(target ElementKind) ([]int, error) {
	return c.connected(target, c.set.order)
}

// connected runs the per-element connectivity query over the given
// indices without touching component state.
func (c *Component) connected(target ElementKind, indices []int) ([]int, error) {
	if !c.kind.connectable() {
		return nil, fmt.Errorf("%w: cannot traverse %v components", ErrKind, c.kind)
	}
	topo, err := c.mesh.Topology()
	if err != nil {
		return nil, err
	}
	var query func(ElementKind, int) ([]int, error)
	switch target {
	case Vertex:
		query = topo.ConnectedVertices
	case Edge:
		query = topo.ConnectedEdges
	case Face:
		query = topo.ConnectedFaces
	default:
		return nil, fmt.Errorf("%w: cannot query %v connectivity", ErrKind, target)
	}
	var connected []int
	for _, idx := range indices {
		touching, err := query(c.kind, idx)
		if err != nil {
			return nil, fmt.Errorf("connected %v of %v %d: %w", target, c.kind, idx, err)
		}
		connected = append(connected, touching...)
	}
	return connected, nil
}

// Convert returns a component of the target kind covering every
// target-kind element touching the current elements. Converting to the
// current kind returns the component itself. A face selection converted
// to vertices yields all corner vertices of all faces, not a flood fill.
func (c *Component) Convert(target ElementKind) (*Component, error) {
	if target == c.kind {
		return c, nil
	}
	connected, err := c.Connected(target)
	if err != nil {
		return nil, err
	}
	return NewComponent(c.mesh, target, connected...)
}

// Grow appends the same-kind neighbors of the current elements in place.
// Growth is monotonic; nothing is removed.
func (c *Component) Grow() error {
	connected, err := c.Connected(c.kind)
	if err != nil {
		return err
	}
	return c.set.Append(connected...)
}

// Points returns the representative point of each element in element
// order: vertex positions, or edge/face centers.
func (c *Component) Points() ([]r3.Vec, error) {
	topo, err := c.mesh.Topology()
	if err != nil {
		return nil, err
	}
	points := make([]r3.Vec, 0, c.set.Len())
	for _, idx := range c.set.order {
		p, err := topo.Center(c.kind, idx)
		if err != nil {
			return nil, fmt.Errorf("center of %v %d: %w", c.kind, idx, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// Center returns the uniformly weighted mean of the element points. An
// empty component fails with ErrEmptyComponent rather than dividing by
// zero.
func (c *Component) Center() (r3.Vec, error) {
	if c.set.Len() == 0 {
		return r3.Vec{}, fmt.Errorf("center: %w", ErrEmptyComponent)
	}
	points, err := c.Points()
	if err != nil {
		return r3.Vec{}, err
	}
	weight := 1 / float64(len(points))
	var center r3.Vec
	for _, p := range points {
		center = r3.Add(center, r3.Scale(weight, p))
	}
	return center, nil
}

// Select replaces the active selection with this component.
func (c *Component) Select(sel Selection) error {
	return sel.SetActiveSelection([]SelectedComponent{{
		Mesh:    c.mesh,
		Kind:    c.kind,
		Indices: c.Elements(),
		Weights: c.Weights(),
	}})
}
