package subtree

import (
	"fmt"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// Build returns the root of the subdivision tree expanded to maxDepth.
// maxDepth == 0 yields a lone root. The node count is 2^(maxDepth+1) - 1,
// so callers should keep maxDepth small (about 20 at most).
func Build(maxDepth int) (*Node, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}

	root := &Node{Word: dyadic.Root, Value: dyadic.Half(), Depth: 0}
	expand(root, maxDepth)

	return root, nil
}

// expand attaches both children to n and recurses until maxDepth.
func expand(n *Node, maxDepth int) {
	if n.Depth >= maxDepth {
		return
	}

	n.Left = &Node{Word: n.Word.Append(dyadic.P), Value: n.Value.Left(), Depth: n.Depth + 1}
	n.Right = &Node{Word: n.Word.Append(dyadic.Q), Value: n.Value.Right(), Depth: n.Depth + 1}
	expand(n.Left, maxDepth)
	expand(n.Right, maxDepth)
}

// Walk visits n and its descendants in pre-order, p-child before q-child.
// The first error returned by fn stops the walk and is returned wrapped.
func (n *Node) Walk(fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		return fmt.Errorf("subtree: walk at %q: %w", n.Word.String(), err)
	}
	if err := n.Left.Walk(fn); err != nil {
		return err
	}

	return n.Right.Walk(fn)
}

// Levels returns the nodes grouped by depth, each row ordered left to right.
func (n *Node) Levels() [][]*Node {
	if n == nil {
		return nil
	}

	var rows [][]*Node
	queue := []*Node{n}
	for len(queue) > 0 {
		rows = append(rows, queue)
		next := make([]*Node, 0, 2*len(queue))
		for _, cur := range queue {
			if cur.Left != nil {
				next = append(next, cur.Left)
			}
			if cur.Right != nil {
				next = append(next, cur.Right)
			}
		}
		queue = next
	}

	return rows
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Count() + n.Right.Count()
}

// Lookup returns the first node, in pre-order, whose value equals v,
// or nil if no materialized node carries v.
func (n *Node) Lookup(v dyadic.Value) *Node {
	if n == nil {
		return nil
	}
	if n.Value.Equal(v) {
		return n
	}
	if hit := n.Left.Lookup(v); hit != nil {
		return hit
	}

	return n.Right.Lookup(v)
}
