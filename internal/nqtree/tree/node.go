package tree

import (
	"fmt"
	"slices"

	"github.com/viant/nqtree/geom"
	"github.com/viant/nqtree/index"
)

// shared holds the settings every node of one tree agrees on.
type shared[T any] struct {
	dims     int
	capacity int
	onDivide func(n *Node[T])
}

// Node is one level of an N-dimensional orthant tree. A node starts as a leaf
// holding up to capacity items; on the first overflow it divides once into
// 2^d children. Items held before the division stay on the node.
type Node[T any] struct {
	box      *geom.Box
	depth    int
	items    []index.Item[T]
	divided  bool
	children []*Node[T]
	shared   *shared[T]
}

// New constructs a root node covering the per-axis [low, high] extents.
func New[T any](bounds [][2]float64, capacity int) *Node[T] {
	lo := make(geom.Point, len(bounds))
	hi := make(geom.Point, len(bounds))
	for i, b := range bounds {
		lo[i], hi[i] = b[0], b[1]
	}
	cfg := &shared[T]{dims: len(bounds), capacity: capacity}
	return newNode(&geom.Box{Min: lo, Max: hi}, 0, cfg)
}

func newNode[T any](box *geom.Box, depth int, cfg *shared[T]) *Node[T] {
	return &Node[T]{
		box:    box,
		depth:  depth,
		items:  make([]index.Item[T], 0, cfg.capacity),
		shared: cfg,
	}
}

// OnDivide registers fn to be called after any node of the tree divides.
func (n *Node[T]) OnDivide(fn func(n *Node[T])) { n.shared.onDivide = fn }

// Insert stores item in the deepest node that accepts it. It returns false
// when the point is outside this node or lies on a partition boundary that
// every child excludes.
func (n *Node[T]) Insert(item index.Item[T]) bool {
	if !n.box.Contains(item.Point) {
		return false
	}
	if len(n.items) < n.shared.capacity {
		n.items = append(n.items, detach(item))
		return true
	}
	if !n.divided {
		n.divide()
	}
	for _, child := range n.children {
		if child.Insert(item) {
			return true
		}
	}
	return false
}

// divide splits the node into 2^d children. Starting from the midpoint, each
// axis doubles the seed set with coordinates m-m/2 and m+m/2; every seed is
// then classified against the midpoint to pick the lower or upper half on each
// axis. The children are fully built before divided is set.
func (n *Node[T]) divide() {
	mid := n.box.Center()
	seeds := []geom.Point{mid}
	for axis := range mid {
		next := make([]geom.Point, 0, 2*len(seeds))
		for _, seed := range seeds {
			lower := seed.Copy()
			lower[axis] = seed[axis] - seed[axis]/2
			upper := seed.Copy()
			upper[axis] = seed[axis] + seed[axis]/2
			next = append(next, lower, upper)
		}
		seeds = next
	}

	children := make([]*Node[T], 0, len(seeds))
	for _, seed := range seeds {
		lo := make(geom.Point, len(mid))
		hi := make(geom.Point, len(mid))
		for axis, v := range seed {
			if v > mid[axis] {
				lo[axis], hi[axis] = mid[axis], n.box.Max[axis]
			} else {
				lo[axis], hi[axis] = n.box.Min[axis], mid[axis]
			}
		}
		children = append(children, newNode(&geom.Box{Min: lo, Max: hi}, n.depth+1, n.shared))
	}
	n.children = children
	n.divided = true
	if n.shared.onDivide != nil {
		n.shared.onDivide(n)
	}
}

// Divided reports whether the node has subdivided.
func (n *Node[T]) Divided() bool { return n.divided }

// Children returns the child nodes, empty for a leaf.
func (n *Node[T]) Children() []*Node[T] { return slices.Clone(n.children) }

// Items returns copies of the items held directly by this node.
func (n *Node[T]) Items() []index.Item[T] {
	result := make([]index.Item[T], len(n.items))
	for i, item := range n.items {
		result[i] = detach(item)
	}
	return result
}

// detach returns item with its own copy of the point so callers cannot
// reach stored coordinates.
func detach[T any](item index.Item[T]) index.Item[T] {
	return index.Item[T]{Value: item.Value, Point: item.Point.Copy()}
}

// Bounds returns copies of the node's bounding box corners.
func (n *Node[T]) Bounds() (lo, hi geom.Point) { return n.box.Min.Copy(), n.box.Max.Copy() }

// Capacity returns the number of items a node holds before dividing.
func (n *Node[T]) Capacity() int { return n.shared.capacity }

// Dims returns the tree dimensionality.
func (n *Node[T]) Dims() int { return n.shared.dims }

// Depth returns the distance from the root, which has depth 0.
func (n *Node[T]) Depth() int { return n.depth }

func (n *Node[T]) String() string {
	return fmt.Sprintf("NQTree(min=%v, max=%v, divided=%v, points=%d)", n.box.Min, n.box.Max, n.divided, len(n.items))
}
