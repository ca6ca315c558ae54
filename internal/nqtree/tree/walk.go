package tree

// Stats summarizes the shape of a subtree.
type Stats struct {
	Nodes    int
	Leaves   int
	Internal int
	Items    int
	MaxDepth int
}

// Walk visits the subtree in pre-order. Returning false from fn skips the
// children of the visited node.
func (n *Node[T]) Walk(fn func(node *Node[T]) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Count returns the number of items stored in the subtree.
func (n *Node[T]) Count() int {
	total := 0
	n.Walk(func(node *Node[T]) bool {
		total += len(node.items)
		return true
	})
	return total
}

// Stats returns node, item and depth counts for the subtree.
func (n *Node[T]) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node[T]) bool {
		s.Nodes++
		if node.divided {
			s.Internal++
		} else {
			s.Leaves++
		}
		s.Items += len(node.items)
		if d := node.depth - n.depth; d > s.MaxDepth {
			s.MaxDepth = d
		}
		return true
	})
	return s
}
