package scene

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/soypat/meshx"
)

// Symmetry tables are persisted as a JSON object in the mesh's
// "symmetryTable" attribute, keyed vertex index to mirror index. An
// unset attribute reads as an empty table.

const symmetryAttr = "symmetryTable"

// Scene implements meshx.SymmetryStore.
var _ meshx.SymmetryStore = (*Scene)(nil)

// ReadSymmetryTable returns the persisted symmetry table of the mesh.
func (s *Scene) ReadSymmetryTable(m meshx.Mesh) (map[int]int, error) {
	h, err := s.handleOf(m)
	if err != nil {
		return nil, err
	}
	raw, ok, err := s.Attr(h, symmetryAttr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[int]int{}, nil
	}
	var encoded map[string]int
	if err := json.Unmarshal([]byte(raw), &encoded); err != nil {
		return nil, fmt.Errorf("corrupt symmetry table on %q: %w", h.Name(), err)
	}
	table := make(map[int]int, len(encoded))
	for key, mirror := range encoded {
		vertex, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("corrupt symmetry table key %q on %q", key, h.Name())
		}
		table[vertex] = mirror
	}
	return table, nil
}

// WriteSymmetryTable persists the symmetry table on the mesh.
func (s *Scene) WriteSymmetryTable(m meshx.Mesh, table map[int]int) error {
	h, err := s.handleOf(m)
	if err != nil {
		return err
	}
	encoded := make(map[string]int, len(table))
	for vertex, mirror := range table {
		encoded[strconv.Itoa(vertex)] = mirror
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return err
	}
	return s.SetAttr(h, symmetryAttr, string(raw))
}

func (s *Scene) handleOf(m meshx.Mesh) (Handle, error) {
	h, ok := m.(Handle)
	if !ok || h.scene != s {
		return Handle{}, fmt.Errorf("%w: mesh is not registered in this scene", meshx.ErrStaleHandle)
	}
	return h, nil
}
