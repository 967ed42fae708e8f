package meshx

import (
	"fmt"
	"sort"
)

// IndexSet is a fixed-capacity ordered set of non-negative element
// indices. Membership tests are O(1) against an occupancy table; the
// insertion order of surviving elements is preserved. Flood fill and the
// set algebra probe membership on every visited neighbor, which is why
// the occupancy table exists instead of scanning the order slice.
//
// The zero value is unusable; construct with NewIndexSet. Assigning
// elements by position is deliberately not provided: it cannot maintain
// the occupancy table cheaply.
type IndexSet struct {
	occupied []bool
	order    []int
}

// NewIndexSet returns an empty set accepting indices in [0, capacity).
func NewIndexSet(capacity int) *IndexSet {
	if capacity < 0 {
		panic("meshx: negative IndexSet capacity")
	}
	return &IndexSet{occupied: make([]bool, capacity)}
}

// Cap returns the exclusive upper bound on stored indices.
func (s *IndexSet) Cap() int { return len(s.occupied) }

// Len returns the number of stored indices.
func (s *IndexSet) Len() int { return len(s.order) }

// At returns the i-th index in insertion order.
func (s *IndexSet) At(i int) int { return s.order[i] }

// Append adds indices not yet present, in argument order. Indices already
// present are skipped. An index outside [0, Cap()) fails with
// ErrInvalidIndex; indices before the failing one remain applied and the
// remainder is not committed.
func (s *IndexSet) Append(indices ...int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.occupied) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, idx, len(s.occupied))
		}
		if s.occupied[idx] {
			continue
		}
		s.occupied[idx] = true
		s.order = append(s.order, idx)
	}
	return nil
}

// Remove deletes indices from the set. Absent and out-of-range indices
// are skipped.
func (s *IndexSet) Remove(indices ...int) {
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.occupied) || !s.occupied[idx] {
			continue
		}
		s.occupied[idx] = false
		for i, stored := range s.order {
			if stored == idx {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether every supplied index is present. With no
// arguments it is vacuously true.
func (s *IndexSet) Contains(indices ...int) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.occupied) || !s.occupied[idx] {
			return false
		}
	}
	return true
}

// Intersection returns the subsequence of indices present in the set,
// preserving the caller's order. Out-of-range indices are treated as
// absent.
func (s *IndexSet) Intersection(indices []int) []int {
	result := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.occupied) && s.occupied[idx] {
			result = append(result, idx)
		}
	}
	return result
}

// Difference returns the subsequence of indices absent from the set,
// preserving the caller's order.
func (s *IndexSet) Difference(indices []int) []int {
	result := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.occupied) || !s.occupied[idx] {
			result = append(result, idx)
		}
	}
	return result
}

// Elements returns a copy of the stored indices in insertion order.
func (s *IndexSet) Elements() []int {
	return append([]int(nil), s.order...)
}

// Sorted returns a copy of the stored indices in ascending order.
func (s *IndexSet) Sorted() []int {
	sorted := s.Elements()
	sort.Ints(sorted)
	return sorted
}

// Clone returns an independent copy of the set.
func (s *IndexSet) Clone() *IndexSet {
	return &IndexSet{
		occupied: append([]bool(nil), s.occupied...),
		order:    append([]int(nil), s.order...),
	}
}

// setOrder replaces the stored order with a permutation of the current
// elements. Used by retrace; callers guarantee ord holds exactly the
// stored indices.
func (s *IndexSet) setOrder(ord []int) {
	s.order = ord
}
