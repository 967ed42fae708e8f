package meshx

import "fmt"

// Shell returns the connected-component closure of c under same-kind
// adjacency: the frontier of connected elements is appended until no new
// elements are discovered. The input component is left untouched; an
// empty component is returned as is.
//
// limit bounds the number of growth iterations as a defense against an
// inconsistent topology accessor; limit <= 0 uses the component capacity,
// which is provably sufficient since every productive iteration adds at
// least one element. Exceeding the bound fails with ErrInternal.
func (c *Component) Shell(limit int) (*Component, error) {
	if c.Len() == 0 {
		logger.Debug("shell of empty component", "kind", c.kind.String())
		return c, nil
	}
	if limit <= 0 {
		limit = c.Cap()
	}
	shell := c.Clone()
	frontier, err := shell.Connected(shell.kind)
	if err != nil {
		return nil, err
	}
	for iter := 0; ; iter++ {
		newly := shell.set.Difference(frontier)
		if len(newly) == 0 {
			return shell, nil
		}
		if iter >= limit {
			return nil, fmt.Errorf("%w: shell still growing after %d iterations", ErrInternal, limit)
		}
		if err := shell.set.Append(newly...); err != nil {
			return nil, err
		}
		if frontier, err = shell.Connected(shell.kind); err != nil {
			return nil, err
		}
	}
}

// Shells partitions every element of the kind on the mesh into disjoint
// shells. Indices are visited in ascending order; each seeds a shell
// unless already covered by an earlier one. The union of the returned
// shells covers every index exactly once.
func Shells(mesh Mesh, kind ElementKind, limit int) ([]*Component, error) {
	topo, err := mesh.Topology()
	if err != nil {
		return nil, err
	}
	count := topo.ElementCount(kind)
	covered := make([]bool, count)
	var shells []*Component
	for idx := 0; idx < count; idx++ {
		if covered[idx] {
			continue
		}
		seed, err := NewComponent(mesh, kind, idx)
		if err != nil {
			return nil, err
		}
		shell, err := seed.Shell(limit)
		if err != nil {
			return nil, err
		}
		for _, covering := range shell.set.order {
			covered[covering] = true
		}
		shells = append(shells, shell)
	}
	return shells, nil
}

// Retrace reorders the elements into a single connected visiting order,
// assuming they already form one open path under same-kind adjacency
// restricted to the component. The walk starts at one of the two
// elements with exactly one in-component neighbor; anything other than
// exactly two such endpoints, or a branch or dead end mid-walk, fails
// with ErrBrokenLoop and leaves the order untouched.
func (c *Component) Retrace() error {
	var endpoints []int
	for _, idx := range c.set.order {
		degree, err := c.inComponentDegree(idx)
		if err != nil {
			return err
		}
		if degree == 1 {
			endpoints = append(endpoints, idx)
		}
	}
	if len(endpoints) != 2 {
		return fmt.Errorf("%w: found %d path endpoints, want 2", ErrBrokenLoop, len(endpoints))
	}
	start, end := endpoints[0], endpoints[1]
	visited := NewIndexSet(c.Cap())
	if err := visited.Append(start); err != nil {
		return err
	}
	reordered := []int{start}
	for current := start; current != end; {
		next, err := c.connected(c.kind, []int{current})
		if err != nil {
			return err
		}
		candidates := visited.Difference(c.set.Intersection(next))
		candidates = dedup(candidates)
		if len(candidates) != 1 {
			return fmt.Errorf("%w: %d unvisited neighbors at %v %d, want 1", ErrBrokenLoop, len(candidates), c.kind, current)
		}
		current = candidates[0]
		if err := visited.Append(current); err != nil {
			return err
		}
		reordered = append(reordered, current)
	}
	if len(reordered) != c.Len() {
		return fmt.Errorf("%w: walk visited %d of %d elements", ErrBrokenLoop, len(reordered), c.Len())
	}
	c.set.setOrder(reordered)
	return nil
}

// Consolidate groups an edge component into maximal connected
// sub-components. Each group is grown within the component's own edge
// adjacency until closed, then emitted; retrace additionally reorders
// every group into its walking order. The groups partition the input.
func (c *Component) Consolidate(retrace bool) ([]*Component, error) {
	if c.kind != Edge {
		return nil, fmt.Errorf("%w: consolidate requires an edge component, got %v", ErrKind, c.kind)
	}
	processed := NewIndexSet(c.Cap())
	var groups []*Component
	for _, seed := range c.set.order {
		if processed.Contains(seed) {
			continue
		}
		group := []int{seed}
		if err := processed.Append(seed); err != nil {
			return nil, err
		}
		for grown := group; len(grown) > 0; {
			connected, err := c.connected(Edge, grown)
			if err != nil {
				return nil, err
			}
			grown = processed.Difference(c.set.Intersection(connected))
			grown = dedup(grown)
			if err := processed.Append(grown...); err != nil {
				return nil, err
			}
			group = append(group, grown...)
		}
		loop, err := NewComponent(c.mesh, Edge, group...)
		if err != nil {
			return nil, err
		}
		if retrace {
			if err := loop.Retrace(); err != nil {
				return nil, err
			}
		}
		groups = append(groups, loop)
	}
	return groups, nil
}

// inComponentDegree counts distinct same-kind neighbors of idx that are
// members of the component.
func (c *Component) inComponentDegree(idx int) (int, error) {
	neighbors, err := c.connected(c.kind, []int{idx})
	if err != nil {
		return 0, err
	}
	return len(dedup(c.set.Intersection(neighbors))), nil
}

// dedup removes repeated indices preserving first-seen order. Adjacency
// queries may report the same neighbor through several incident
// elements.
func dedup(indices []int) []int {
	if len(indices) < 2 {
		return indices
	}
	seen := make(map[int]struct{}, len(indices))
	result := indices[:0]
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, idx)
	}
	return result
}
