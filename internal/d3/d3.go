// Package d3 holds element-wise r3.Vec helpers shared by the meshx
// packages.
package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Elem returns a vector with all components set to sides.
func Elem(sides float64) r3.Vec {
	return r3.Vec{X: sides, Y: sides, Z: sides}
}

// MinElem returns a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem returns a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// EmptyBox returns a box that contains no points and extends to enclose
// whatever is added to it.
func EmptyBox() Box {
	return Box{Min: Elem(math.MaxFloat64), Max: Elem(-math.MaxFloat64)}
}

// Include grows the box to contain p.
func (b Box) Include(p r3.Vec) Box {
	b.Min = MinElem(b.Min, p)
	b.Max = MaxElem(b.Max, p)
	return b
}

// Size returns the box dimensions.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}
