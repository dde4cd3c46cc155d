// Package dyadic provides the exact arithmetic and the address alphabet shared
// by the subdivision tree, the word finder and the rope builder.
//
// What:
//
//   - Value: an immutable rational in lowest terms (backed by math/big.Rat).
//     No floating-point approximation is used anywhere; equality is exact.
//   - Left / Right: the two affine maps of the subdivision tree:
//     Left(v)  = (1+v)/2   (the p-branch)
//     Right(v) = (1-v)/2   (the q-branch)
//   - Word: an immutable address over the alphabet {p, q}. The empty word is
//     the root 1/2; word length equals tree depth.
//
// Why:
//
//   - Every dyadic rational in (0,1) has exactly one address at its minimal
//     depth, so the Word is a canonical name for the value.
//   - Replaying a Word through Left/Right reproduces its value exactly, which
//     is how callers verify a search result.
//
// Complexity:
//
//   - Left, Right, Equal: O(b) where b is the bit length of the operands.
//   - Word.Value:         O(n·b) for a word of length n.
//
// Errors:
//
//   - ErrZeroDenominator  denominator is zero
//   - ErrInvalidValue     text is not a rational number
//   - ErrNotDyadic        reduced denominator is not a power of two
//   - ErrOutOfRange       value is not strictly between 0 and 1
//   - ErrInvalidSymbol    word contains a byte other than 'p' or 'q'
package dyadic
