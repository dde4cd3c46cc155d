// Package dyadtree locates dyadic fractions in the binary subdivision tree
// rooted at 1/2 and renders their addresses as rope sequences.
//
// What is the subdivision tree?
//
//	Every node carries an exact value v in (0,1) and an address word over
//	{p, q}. The root is 1/2 with the empty word; the p-child of v is (1+v)/2
//	and the q-child is (1-v)/2:
//
//	              1/2
//	          p /     \ q
//	         3/4       1/4
//	        /   \     /   \
//	      7/8   1/8 5/8   3/8
//
//	Each dyadic rational in (0,1) appears exactly once, at depth
//	bitlen(den) - 2.
//
// Packages:
//
//	dyadic/        exact Value (math/big), affine maps, Word and Symbol
//	subtree/       finite tree: build, walk, level rows, lookup
//	wordfind/      bounded p-first depth-first bisection search
//	rope/          fold a word into rope notation
//	cmd/dyadtree/  command-line front end (text, YAML and JSON output)
//
// Quick example:
//
//	target, _ := dyadic.New(5, 8)
//	w, _ := wordfind.Find(target, 3)  // "qp"
//	s, _ := rope.Build(w)             // "|<b>1</b>2{<b>2</b>3|<b>3</b>}"
//
// All operations are synchronous and allocate fresh results; none keeps
// shared state, so they may be called from any number of goroutines.
//
//	go get github.com/katalvlaran/dyadtree
package dyadtree
