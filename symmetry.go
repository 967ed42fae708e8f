package meshx

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis selects the mirror plane normal for symmetry matching.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// reflect negates the axis component of p.
func (a Axis) reflect(p r3.Vec) r3.Vec {
	switch a {
	case AxisX:
		p.X = -p.X
	case AxisY:
		p.Y = -p.Y
	case AxisZ:
		p.Z = -p.Z
	default:
		panic("meshx: invalid axis")
	}
	return p
}

// MirrorOptions tunes symmetry matching. Tolerance is the maximum
// distance between a reflected vertex and its candidate match and must be
// positive. Axis defaults to AxisX.
type MirrorOptions struct {
	Tolerance float64
	Axis      Axis
}

// MirrorVertices resolves the mirror-axis counterpart of each vertex
// index. Pairs already recorded in the mesh's persisted symmetry table
// are resolved exactly; the remainder are matched by nearest-neighbor
// search over all current vertex positions reflected across the axis.
// Newly discovered pairs are merged into the table and persisted after
// the whole batch, so repeated mirroring is amortized O(1) per vertex.
//
// Vertices with no in-tolerance match are logged and omitted from the
// result; a partial mapping is not an error.
func MirrorVertices(mesh Mesh, store SymmetryStore, indices []int, opts MirrorOptions) (map[int]int, error) {
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("mirror tolerance must be positive, got %v", opts.Tolerance)
	}
	table, err := store.ReadSymmetryTable(mesh)
	if err != nil {
		return nil, fmt.Errorf("read symmetry table for %q: %w", mesh.Name(), err)
	}
	result := make(map[int]int, len(indices))
	var missing []int
	for _, idx := range indices {
		if mirror, ok := table[idx]; ok {
			result[idx] = mirror
		} else {
			missing = append(missing, idx)
		}
	}
	if len(missing) == 0 {
		logger.Debug("symmetry table is up to date", "mesh", mesh.Name())
		return result, nil
	}

	topo, err := mesh.Topology()
	if err != nil {
		return nil, err
	}
	points, err := allVertexPoints(topo)
	if err != nil {
		return nil, err
	}
	// Tree construction partitions points in place; keep an indexed copy
	// of the positions for the queries.
	positions := make([]r3.Vec, len(points))
	for i, p := range points {
		positions[i] = p.pos
	}
	tree := kdtree.New(points, true)

	found := make(map[int]int, len(missing))
	for _, idx := range missing {
		if idx < 0 || idx >= len(positions) {
			return nil, fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidIndex, idx, len(positions))
		}
		query := vertexPoint{pos: opts.Axis.reflect(positions[idx])}
		nearest, dist2 := tree.Nearest(&query)
		if math.Sqrt(dist2) > opts.Tolerance {
			logger.Warn("no mirrored vertex within tolerance",
				"mesh", mesh.Name(), "vertex", idx, "axis", opts.Axis.String())
			continue
		}
		found[idx] = nearest.(*vertexPoint).idx
	}
	if len(found) > 0 {
		if table == nil {
			table = make(map[int]int, len(found))
		}
		for idx, mirror := range found {
			table[idx] = mirror
			result[idx] = mirror
		}
		if err := store.WriteSymmetryTable(mesh, table); err != nil {
			return nil, fmt.Errorf("write symmetry table for %q: %w", mesh.Name(), err)
		}
	}
	return result, nil
}

// ResetSymmetryTable clears the mesh's persisted symmetry table.
func ResetSymmetryTable(mesh Mesh, store SymmetryStore) error {
	return store.WriteSymmetryTable(mesh, map[int]int{})
}

// ClosestVertices returns, for each query vertex, the nearest vertex on
// the mesh that is not itself among the queries. The query set is
// excluded from the search tree entirely so that self matches and
// query-to-query matches are impossible.
func ClosestVertices(mesh Mesh, indices []int) ([]int, error) {
	topo, err := mesh.Topology()
	if err != nil {
		return nil, err
	}
	points, err := allVertexPoints(topo)
	if err != nil {
		return nil, err
	}
	queried := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(points) {
			return nil, fmt.Errorf("%w: vertex %d not in [0, %d)", ErrInvalidIndex, idx, len(points))
		}
		queried[idx] = true
	}
	candidates := make(vertexPoints, 0, len(points)-len(queried))
	for _, p := range points {
		if !queried[p.idx] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no vertices left to search", ErrEmptyComponent)
	}
	tree := kdtree.New(candidates, true)
	closest := make([]int, len(indices))
	for i, idx := range indices {
		nearest, _ := tree.Nearest(&vertexPoint{pos: points[idx].pos})
		closest[i] = nearest.(*vertexPoint).idx
	}
	return closest, nil
}

// NearestNeighbors returns, for each query vertex, its directly connected
// neighbor at minimum distance. Vertices with no neighbors map to
// themselves.
func NearestNeighbors(mesh Mesh, indices []int) ([]int, error) {
	topo, err := mesh.Topology()
	if err != nil {
		return nil, err
	}
	nearest := make([]int, len(indices))
	for i, idx := range indices {
		pos, err := topo.Position(idx)
		if err != nil {
			return nil, err
		}
		neighbors, err := topo.ConnectedVertices(Vertex, idx)
		if err != nil {
			return nil, err
		}
		shortest := math.MaxFloat64
		closest := idx
		for _, neighbor := range neighbors {
			other, err := topo.Position(neighbor)
			if err != nil {
				return nil, err
			}
			if d := r3.Norm2(r3.Sub(pos, other)); d < shortest {
				shortest = d
				closest = neighbor
			}
		}
		nearest[i] = closest
	}
	return nearest, nil
}

// PathLength sums the distances between successive vertices of an
// ordered path, such as a retraced vertex loop.
func PathLength(mesh Mesh, ordered []int) (float64, error) {
	topo, err := mesh.Topology()
	if err != nil {
		return 0, err
	}
	var length float64
	for i := 1; i < len(ordered); i++ {
		a, err := topo.Position(ordered[i-1])
		if err != nil {
			return 0, err
		}
		b, err := topo.Position(ordered[i])
		if err != nil {
			return 0, err
		}
		length += r3.Norm(r3.Sub(a, b))
	}
	return length, nil
}

func allVertexPoints(topo Topology) (vertexPoints, error) {
	count := topo.ElementCount(Vertex)
	points := make(vertexPoints, count)
	for idx := 0; idx < count; idx++ {
		pos, err := topo.Position(idx)
		if err != nil {
			return nil, fmt.Errorf("position of vertex %d: %w", idx, err)
		}
		points[idx] = vertexPoint{idx: idx, pos: pos}
	}
	return points, nil
}
