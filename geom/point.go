package geom

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is an ordered, fixed-length coordinate vector.
type Point []float64

// NewPoint returns a point holding a copy of coords.
func NewPoint(coords ...float64) Point {
	return slices.Clone(Point(coords))
}

// Dims returns the number of coordinates.
func (p Point) Dims() int { return len(p) }

// Get returns the coordinate on axis i.
func (p Point) Get(i int) (float64, error) {
	if i < 0 || i >= len(p) {
		return 0, fmt.Errorf("%w: axis %d out of range [0,%d)", ErrDimensionMismatch, i, len(p))
	}
	return p[i], nil
}

// Set replaces the coordinate on axis i.
func (p Point) Set(i int, v float64) error {
	if i < 0 || i >= len(p) {
		return fmt.Errorf("%w: axis %d out of range [0,%d)", ErrDimensionMismatch, i, len(p))
	}
	p[i] = v
	return nil
}

// Copy returns an independent point with identical contents.
func (p Point) Copy() Point {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Coords returns a restartable sequence over the coordinates.
func (p Point) Coords() iter.Seq[float64] {
	return slices.Values(p)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("%w: distance %d vs %d", ErrDimensionMismatch, len(p), len(q))
	}
	if len(p) == 0 {
		return 0, nil
	}
	return floats.Distance(p, q, 2), nil
}

// Midpoint returns the per-axis average of p and q.
func (p Point) Midpoint(q Point) (Point, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("%w: midpoint %d vs %d", ErrDimensionMismatch, len(p), len(q))
	}
	mid := make(Point, len(p))
	floats.AddTo(mid, p, q)
	floats.Scale(0.5, mid)
	return mid, nil
}

func (p Point) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
