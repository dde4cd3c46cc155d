// Package subtree materializes the binary subdivision tree rooted at 1/2 down
// to a fixed depth, for renderers that need every node.
//
// What:
//
//   - Build(maxDepth): root {word "", value 1/2, depth 0}; every node at depth
//     d < maxDepth gets a p-child (w+"p", (1+v)/2) and a q-child (w+"q", (1-v)/2).
//     Nodes below maxDepth are never allocated, so the tree is finite by
//     construction.
//   - Walk:   pre-order traversal, p-child before q-child, with error abort.
//   - Levels: breadth-first rows, one slice per depth.
//   - Lookup: first node (pre-order) whose value equals a target.
//
// Ownership:
//
//	Each Node exclusively owns its two optional children; there are no parent
//	pointers and no sharing. Nodes are never mutated after Build returns, so a
//	tree may be read from many goroutines.
//
// Complexity:
//
//   - Build:  Time O(2^(d+1)), Memory O(2^(d+1)) nodes.
//   - Walk, Levels, Count, Lookup: Time O(N) over N materialized nodes.
//
// Errors:
//
//   - ErrNegativeDepth  maxDepth < 0
//   - any error returned by a Walk callback, wrapped with the node word
package subtree
