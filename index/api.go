package index

import "github.com/viant/nqtree/geom"

// Item pairs an opaque value with its coordinates. Items are immutable once
// stored.
type Item[T any] struct {
	Value T
	Point geom.Point
}

// Index defines a point index with a dimensionality fixed at construction.
type Index[T any] interface {
	// Insert stores value at coords. It returns false with a nil error when
	// the point is rejected (outside the indexed space), and an error when the
	// coordinates do not match the index dimensionality.
	Insert(value T, coords ...float64) (bool, error)

	// Search returns every stored item strictly inside region, in no
	// particular order.
	Search(region geom.Region) ([]Item[T], error)

	// Len returns the number of stored items.
	Len() int

	// Dims returns the index dimensionality.
	Dims() int
}
