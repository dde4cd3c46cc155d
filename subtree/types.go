package subtree

import (
	"errors"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// ErrNegativeDepth is returned by Build when maxDepth < 0.
var ErrNegativeDepth = errors.New("subtree: max depth must be non-negative")

// Node is one vertex of the subdivision tree.
type Node struct {
	// Word is the address of the node; empty for the root.
	Word dyadic.Word

	// Value is the exact rational carried by the node, strictly in (0,1).
	Value dyadic.Value

	// Depth equals Word.Len().
	Depth int

	// Left is the p-child, nil at the depth limit.
	Left *Node

	// Right is the q-child, nil at the depth limit.
	Right *Node
}

// IsLeaf reports whether n has no materialized children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
