package geom

import "fmt"

// Sphere is the set of points closer than Radius to Center. Points on the
// surface are excluded; a negative radius contains nothing.
type Sphere struct {
	Center Point
	Radius float64
}

// NewSphere returns a sphere with a copy of center.
func NewSphere(center Point, radius float64) *Sphere {
	return &Sphere{Center: center.Copy(), Radius: radius}
}

// Dims returns the sphere dimensionality.
func (s *Sphere) Dims() int { return len(s.Center) }

// Contains reports whether distance(center, p) < radius.
func (s *Sphere) Contains(p Point) bool {
	d, err := s.Center.Distance(p)
	if err != nil {
		return false
	}
	return d < s.Radius
}

// BoundarySamples returns the center.
func (s *Sphere) BoundarySamples() []Point {
	return []Point{s.Center}
}

// Bounds returns the axis-aligned box enclosing the sphere.
func (s *Sphere) Bounds() (lo, hi Point) {
	lo = make(Point, len(s.Center))
	hi = make(Point, len(s.Center))
	for i, c := range s.Center {
		lo[i] = c - s.Radius
		hi[i] = c + s.Radius
	}
	return lo, hi
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(center=%v, radius=%v)", s.Center, s.Radius)
}
