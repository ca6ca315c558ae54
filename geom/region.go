package geom

// Region is a query shape. New shapes only need to implement these two methods
// to be searchable.
type Region interface {
	// Contains reports whether p lies strictly inside the region. A point whose
	// arity differs from the region's is never contained.
	Contains(p Point) bool

	// BoundarySamples returns a small set of representative points used by the
	// intersection heuristic. It is not a full description of the boundary.
	BoundarySamples() []Point
}

// Bounded is implemented by regions that can report their axis-aligned
// extent. Indexes use it to widen, never narrow, the set of subtrees searched.
type Bounded interface {
	Bounds() (lo, hi Point)
}
