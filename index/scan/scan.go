package scan

import (
	"fmt"

	"github.com/viant/nqtree/geom"
	"github.com/viant/nqtree/index"
)

// Index is a linear-scan point index.
type Index[T any] struct {
	bounds *geom.Box
	items  []index.Item[T]
}

// New returns an index accepting points strictly inside the per-axis
// [low, high] extents.
func New[T any](bounds [][2]float64) (*Index[T], error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("scan: no axis bounds")
	}
	lo := make(geom.Point, len(bounds))
	hi := make(geom.Point, len(bounds))
	for i, b := range bounds {
		lo[i], hi[i] = b[0], b[1]
	}
	return &Index[T]{bounds: &geom.Box{Min: lo, Max: hi}}, nil
}

// Insert stores value when coords fall strictly inside the index bounds.
func (i *Index[T]) Insert(value T, coords ...float64) (bool, error) {
	if len(coords) != i.bounds.Dims() {
		return false, fmt.Errorf("scan: insert %w: %d vs %d", geom.ErrDimensionMismatch, len(coords), i.bounds.Dims())
	}
	point := geom.NewPoint(coords...)
	if !i.bounds.Contains(point) {
		return false, nil
	}
	i.items = append(i.items, index.Item[T]{Value: value, Point: point})
	return true, nil
}

// Search returns every stored item contained by region.
func (i *Index[T]) Search(region geom.Region) ([]index.Item[T], error) {
	var result []index.Item[T]
	for _, item := range i.items {
		if region.Contains(item.Point) {
			result = append(result, item)
		}
	}
	return result, nil
}

// Len returns the number of stored items.
func (i *Index[T]) Len() int { return len(i.items) }

// Dims returns the index dimensionality.
func (i *Index[T]) Dims() int { return i.bounds.Dims() }
