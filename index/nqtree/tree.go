package nqtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/viant/nqtree/geom"
	"github.com/viant/nqtree/index"
	"github.com/viant/nqtree/internal/nqtree/tree"
)

var (
	// ErrInvalidCapacity is returned when the node capacity is not positive.
	ErrInvalidCapacity = errors.New("nqtree: capacity must be positive")
	// ErrInvalidBounds is returned when no axis is given.
	ErrInvalidBounds = errors.New("nqtree: invalid axis bounds")
)

// Stats summarizes the shape of a tree.
type Stats = tree.Stats

// Tree is an N-dimensional orthant tree safe for concurrent use. Inserts are
// serialized; searches run concurrently with each other.
type Tree[T any] struct {
	root    *tree.Node[T]
	options options
	count   int
	mu      sync.RWMutex
}

// New constructs a tree covering the per-axis [low, high] extents. The number
// of axes fixes the dimensionality for every later call. capacity must be
// positive and at least one axis is required. Extents are taken as given: an
// axis with low >= high yields a tree that stores nothing.
func New[T any](bounds [][2]float64, capacity int, opts ...Option) (*Tree[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrInvalidBounds)
	}
	t := &Tree[T]{
		root:    tree.New[T](bounds, capacity),
		options: newOptions(opts),
	}
	t.root.OnDivide(t.onDivide)
	return t, nil
}

func (t *Tree[T]) onDivide(n *tree.Node[T]) {
	t.options.logger.Debug("node divided",
		slog.String("tree", t.options.name),
		slog.Int("depth", n.Depth()),
		slog.Int("children", len(n.Children())),
		slog.Int("held", len(n.Items())))
	if t.options.metrics {
		subdivisionsTotal.WithLabelValues(t.options.name).Inc()
	}
}

// Insert stores value at coords. It returns false with a nil error when the
// point is outside the tree bounds or lies on an internal partition boundary.
func (t *Tree[T]) Insert(value T, coords ...float64) (bool, error) {
	if len(coords) != t.root.Dims() {
		return false, fmt.Errorf("nqtree: insert %w: %d vs %d", geom.ErrDimensionMismatch, len(coords), t.root.Dims())
	}
	item := index.Item[T]{Value: value, Point: geom.NewPoint(coords...)}

	t.mu.Lock()
	stored := t.root.Insert(item)
	if stored {
		t.count++
	}
	if t.options.metrics {
		itemsGauge.WithLabelValues(t.options.name).Set(float64(t.count))
	}
	t.mu.Unlock()

	if !stored {
		t.options.logger.Debug("insert rejected",
			slog.String("tree", t.options.name),
			slog.Any("point", item.Point))
	}
	if t.options.metrics {
		result := "rejected"
		if stored {
			result = "stored"
		}
		insertsTotal.WithLabelValues(t.options.name, result).Inc()
	}
	return stored, nil
}

// Search returns every stored item strictly inside region, in no particular
// order.
func (t *Tree[T]) Search(region geom.Region) ([]index.Item[T], error) {
	return t.SearchContext(context.Background(), region)
}

// SearchContext is Search with cancellation of the parallel fan-out.
func (t *Tree[T]) SearchContext(ctx context.Context, region geom.Region) ([]index.Item[T], error) {
	if isNil(region) {
		return nil, fmt.Errorf("nqtree: region is nil")
	}
	if bounded, ok := region.(geom.Bounded); ok {
		lo, hi := bounded.Bounds()
		if len(lo) != t.root.Dims() || len(hi) != t.root.Dims() {
			return nil, fmt.Errorf("nqtree: search %w: region bounds %d/%d vs tree %d", geom.ErrDimensionMismatch, len(lo), len(hi), t.root.Dims())
		}
	}
	for _, sample := range region.BoundarySamples() {
		if len(sample) != t.root.Dims() {
			return nil, fmt.Errorf("nqtree: search %w: region %d vs tree %d", geom.ErrDimensionMismatch, len(sample), t.root.Dims())
		}
	}
	if t.options.metrics {
		searchesTotal.WithLabelValues(t.options.name, regionKind(region)).Inc()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.options.parallelism > 1 {
		return t.root.SearchParallel(ctx, region, t.options.parallelism)
	}
	return t.root.Search(region), nil
}

// isNil reports whether region is nil or a nil pointer behind the interface.
func isNil(region geom.Region) bool {
	if region == nil {
		return true
	}
	v := reflect.ValueOf(region)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// All returns copies of every stored item.
func (t *Tree[T]) All() []index.Item[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]index.Item[T], 0, t.count)
	t.root.Walk(func(n *tree.Node[T]) bool {
		result = append(result, n.Items()...)
		return true
	})
	return result
}

// Len returns the number of stored items.
func (t *Tree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Dims returns the tree dimensionality.
func (t *Tree[T]) Dims() int { return t.root.Dims() }

// Name returns the name used in logs and metrics.
func (t *Tree[T]) Name() string { return t.options.name }

// Bounds returns copies of the root bounding box corners.
func (t *Tree[T]) Bounds() (lo, hi geom.Point) { return t.root.Bounds() }

// Divided reports whether the root has subdivided.
func (t *Tree[T]) Divided() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.Divided()
}

// Stats returns node, item and depth counts.
func (t *Tree[T]) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.Stats()
}

func (t *Tree[T]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.String()
}
