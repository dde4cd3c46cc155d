// Package wordfind locates the address word of a dyadic rational in the
// subdivision tree by bounded depth-first bisection.
//
// What:
//
//   - Find(target, maxDepth, opts...): search from c = 1/2 with the empty word.
//     At each step the current value is compared with the target exactly; on a
//     mismatch the p-branch (c' = (1+c)/2) is explored first and its result is
//     returned as soon as it matches, otherwise the q-branch (c' = (1-c)/2).
//     Branches deeper than maxDepth fail.
//   - FindFraction(num, den, opts...): the input checks a front end performs
//     before searching (den > 0 and a power of two, 0 < num/den < 1), with the depth bound taken
//     from the entered denominator as bitlen(den) - 1.
//
// Why p first:
//
//	A dyadic value has a single address at its minimal depth and none deeper,
//	so the order never changes the answer in practice. Fixing the order keeps
//	the result deterministic regardless.
//
// Options:
//
//   - WithOnVisit(fn)        pre-order hook called for every examined node;
//     an error from fn aborts the search.
//   - WithDepthLimit(limit)  reject searches deeper than limit.
//
// Complexity:
//
//   - Time:   O(2^maxDepth) nodes in the worst case (unreachable target).
//   - Memory: O(maxDepth) recursion.
//
// Errors:
//
//   - ErrNotFound         target is not reachable within maxDepth
//   - ErrNegativeDepth    maxDepth < 0
//   - ErrDepthLimit       maxDepth exceeds WithDepthLimit
//   - ErrNotDyadic        FindFraction: den <= 0 or not a power of two
//   - dyadic.ErrOutOfRange FindFraction: num/den is not strictly in (0,1)
//   - ErrOptionViolation  an Option was given an invalid argument
//   - any error returned by OnVisit, wrapped with the node word
package wordfind
