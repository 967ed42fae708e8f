// Package scene owns mesh lifetimes for the meshx component algebra. It
// keeps registered meshes in an arena addressed by generation-checked
// handles, tracks the active component selection, and stores per-mesh
// string attributes, one of which backs the persisted symmetry table.
//
// A Scene models a single interactive editor session: it is not safe for
// concurrent use.
package scene

import (
	"fmt"

	"github.com/soypat/meshx"
)

type entry struct {
	name       string
	topo       meshx.Topology
	attrs      map[string]string
	generation uint32
	alive      bool
}

// Scene is a registry of meshes and the active component selection.
type Scene struct {
	meshes    []entry
	byName    map[string]int
	selection []meshx.SelectedComponent
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{byName: make(map[string]int)}
}

// Handle is a weak reference into a scene's mesh arena. It implements
// meshx.Mesh: resolving after the mesh was deleted, or after the slot was
// reused, fails with meshx.ErrStaleHandle.
type Handle struct {
	scene      *Scene
	index      int
	generation uint32
}

// Add registers a mesh under a unique name and returns its handle.
func (s *Scene) Add(name string, topo meshx.Topology) (Handle, error) {
	if topo == nil {
		panic("scene: nil topology")
	}
	if _, taken := s.byName[name]; taken {
		return Handle{}, fmt.Errorf("mesh name %q already registered", name)
	}
	// Reuse the first dead slot before growing the arena.
	index := -1
	for i := range s.meshes {
		if !s.meshes[i].alive {
			index = i
			break
		}
	}
	if index < 0 {
		index = len(s.meshes)
		s.meshes = append(s.meshes, entry{})
	}
	generation := s.meshes[index].generation + 1
	s.meshes[index] = entry{
		name:       name,
		topo:       topo,
		attrs:      make(map[string]string),
		generation: generation,
		alive:      true,
	}
	s.byName[name] = index
	return Handle{scene: s, index: index, generation: generation}, nil
}

// Delete removes the mesh from the scene. Existing handles become stale;
// the arena slot is recycled under a new generation.
func (s *Scene) Delete(h Handle) error {
	e, err := s.resolve(h)
	if err != nil {
		return err
	}
	delete(s.byName, e.name)
	e.alive = false
	e.topo = nil
	e.attrs = nil
	return nil
}

// MeshByName resolves a registered mesh name to its handle. Implements
// meshx.MeshResolver for selection strings.
func (s *Scene) MeshByName(name string) (meshx.Mesh, error) {
	index, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", meshx.ErrUnknownMesh, name)
	}
	return Handle{scene: s, index: index, generation: s.meshes[index].generation}, nil
}

func (s *Scene) resolve(h Handle) (*entry, error) {
	if h.scene != s || h.index < 0 || h.index >= len(s.meshes) {
		return nil, fmt.Errorf("%w: handle belongs to another scene", meshx.ErrStaleHandle)
	}
	e := &s.meshes[h.index]
	if !e.alive || e.generation != h.generation {
		return nil, fmt.Errorf("%w: mesh %q was deleted", meshx.ErrStaleHandle, e.name)
	}
	return e, nil
}

// Topology resolves the mesh's topology accessor.
func (h Handle) Topology() (meshx.Topology, error) {
	e, err := h.scene.resolve(h)
	if err != nil {
		return nil, err
	}
	return e.topo, nil
}

// Name returns the mesh's registered name.
func (h Handle) Name() string {
	e, err := h.scene.resolve(h)
	if err != nil {
		return fmt.Sprintf("<stale mesh %d>", h.index)
	}
	return e.name
}

// Attr returns a mesh attribute and whether it was set.
func (s *Scene) Attr(h Handle, key string) (string, bool, error) {
	e, err := s.resolve(h)
	if err != nil {
		return "", false, err
	}
	value, ok := e.attrs[key]
	return value, ok, nil
}

// SetAttr stores a mesh attribute.
func (s *Scene) SetAttr(h Handle, key, value string) error {
	e, err := s.resolve(h)
	if err != nil {
		return err
	}
	e.attrs[key] = value
	return nil
}

// ActiveSelection returns the active component selection. Implements
// meshx.Selection.
func (s *Scene) ActiveSelection() ([]meshx.SelectedComponent, error) {
	return append([]meshx.SelectedComponent(nil), s.selection...), nil
}

// SetActiveSelection replaces the active component selection.
func (s *Scene) SetActiveSelection(sel []meshx.SelectedComponent) error {
	s.selection = append([]meshx.SelectedComponent(nil), sel...)
	return nil
}
