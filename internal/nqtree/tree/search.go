package tree

import (
	"context"
	"sync"

	"github.com/viant/nqtree/geom"
	"github.com/viant/nqtree/index"
	"golang.org/x/sync/errgroup"
)

// Intersects reports whether region may overlap the node. A false result
// prunes the subtree; false positives only cost extra work.
func (n *Node[T]) Intersects(region geom.Region) bool {
	for _, sample := range region.BoundarySamples() {
		if n.box.Contains(sample) {
			return true
		}
	}
	for _, sample := range n.box.BoundarySamples() {
		if region.Contains(sample) {
			return true
		}
	}
	if sphere, ok := region.(*geom.Sphere); ok {
		// circumscribing sphere of the node vs the query sphere
		d, err := n.box.Center().Distance(sphere.Center)
		if err != nil || !(n.box.HalfDiagonal()+sphere.Radius < d) {
			return true
		}
	}
	if bounded, ok := region.(geom.Bounded); ok {
		lo, hi := bounded.Bounds()
		if n.box.Overlaps(lo, hi) {
			return true
		}
	}
	return false
}

// Search returns the items in the subtree strictly inside region. It never
// mutates the tree.
func (n *Node[T]) Search(region geom.Region) []index.Item[T] {
	var result []index.Item[T]
	n.search(region, &result)
	return result
}

func (n *Node[T]) search(region geom.Region, result *[]index.Item[T]) {
	if !n.Intersects(region) {
		return
	}
	*result = n.appendMatches(region, *result)
	for _, child := range n.children {
		child.search(region, result)
	}
}

func (n *Node[T]) appendMatches(region geom.Region, dest []index.Item[T]) []index.Item[T] {
	for _, item := range n.items {
		if region.Contains(item.Point) {
			dest = append(dest, detach(item))
		}
	}
	return dest
}

// SearchParallel behaves like Search but searches the node's children
// concurrently with at most limit goroutines.
func (n *Node[T]) SearchParallel(ctx context.Context, region geom.Region, limit int) ([]index.Item[T], error) {
	if limit <= 1 || !n.divided {
		return n.Search(region), nil
	}
	if !n.Intersects(region) {
		return nil, nil
	}
	result := n.appendMatches(region, nil)
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, child := range n.children {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found := child.Search(region)
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			result = append(result, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
