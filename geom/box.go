package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Box is an axis-aligned region between Min and Max. Containment is strict on
// every face. Min[i] < Max[i] is assumed but not validated: a degenerate box
// contains nothing.
type Box struct {
	Min Point
	Max Point
}

// NewBox returns a box with copies of the provided corners.
func NewBox(lo, hi Point) (*Box, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("%w: box corners %d vs %d", ErrDimensionMismatch, len(lo), len(hi))
	}
	return &Box{Min: lo.Copy(), Max: hi.Copy()}, nil
}

// Dims returns the box dimensionality.
func (b *Box) Dims() int { return len(b.Min) }

// Contains reports whether min[i] < p[i] < max[i] holds on every axis.
func (b *Box) Contains(p Point) bool {
	if len(p) != len(b.Min) || len(p) != len(b.Max) {
		return false
	}
	for i, v := range p {
		if !(b.Min[i] < v) || !(v < b.Max[i]) {
			return false
		}
	}
	return true
}

// BoundarySamples returns a single point built by interleaving the corners'
// coordinates (min0, max0, min1, max1, ...) and truncating to the box arity.
// It is a cheap proxy, not the corner set. A box with corners of different
// arity has no sample.
func (b *Box) BoundarySamples() []Point {
	d := len(b.Min)
	if len(b.Max) != d {
		return nil
	}
	sample := make(Point, 0, d)
	for i := 0; len(sample) < d; i++ {
		sample = append(sample, b.Min[i])
		if len(sample) < d {
			sample = append(sample, b.Max[i])
		}
	}
	return []Point{sample}
}

// Bounds returns the box corners.
func (b *Box) Bounds() (lo, hi Point) { return b.Min, b.Max }

// Center returns the per-axis midpoint.
func (b *Box) Center() Point {
	c := make(Point, len(b.Min))
	floats.AddTo(c, b.Min, b.Max)
	floats.Scale(0.5, c)
	return c
}

// HalfDiagonal returns the distance from the center to any corner.
func (b *Box) HalfDiagonal() float64 {
	if len(b.Min) == 0 {
		return 0
	}
	return floats.Distance(b.Min, b.Max, 2) / 2
}

// Overlaps reports whether the closed box [lo, hi] shares any point with the
// closed box b.
func (b *Box) Overlaps(lo, hi Point) bool {
	if len(lo) != len(b.Min) || len(hi) != len(b.Max) {
		return false
	}
	for i := range b.Min {
		if b.Min[i] > hi[i] || lo[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func (b *Box) String() string {
	return fmt.Sprintf("Box(min=%v, max=%v)", b.Min, b.Max)
}
