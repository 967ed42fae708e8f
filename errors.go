package meshx

import "errors"

// Errors returned by component and traversal operations. All are matched
// with errors.Is; operation errors wrap these sentinels with context.
var (
	// ErrInvalidIndex reports an element index outside [0, capacity).
	// Indices are never clamped.
	ErrInvalidIndex = errors.New("element index out of range")
	// ErrKind reports an operation applied to an element kind that does
	// not support it, such as connectivity queries on face-vertex
	// components.
	ErrKind = errors.New("unsupported element kind")
	// ErrSelection reports an active selection that does not contain
	// exactly one component when one was required.
	ErrSelection = errors.New("selection must contain exactly one component")
	// ErrBrokenLoop reports a retrace over elements that do not form a
	// single open path.
	ErrBrokenLoop = errors.New("broken loop")
	// ErrInternal reports a flood fill that exceeded its iteration bound.
	// It does not occur on consistent topology and signals accessor
	// misbehavior.
	ErrInternal = errors.New("traversal exceeded iteration bound")
	// ErrEmptyComponent reports an operation that requires at least one
	// element, such as Center.
	ErrEmptyComponent = errors.New("empty component")
	// ErrStaleHandle reports a mesh reference whose mesh has been removed
	// from its registry.
	ErrStaleHandle = errors.New("stale mesh handle")
	// ErrUnknownMesh reports a selection string naming no known mesh.
	ErrUnknownMesh = errors.New("unknown mesh")
)
