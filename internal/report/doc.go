// Package report runs the three core operations for one user request and
// encodes the result for a terminal, as YAML, or as JSON.
//
// A request carries the numerator and denominator exactly as entered. The
// denominator must be a positive power of two and the fraction must lie
// strictly between 0 and 1; the search depth is derived from the denominator
// (bitlen(den) - 1) and refused above Request.MaxSearchDepth. Rejections
// surface as dyadic.ErrOutOfRange, wordfind.ErrNotDyadic or
// wordfind.ErrDepthLimit so the caller can print a message instead of retrying.
// Use NewRequest for the default limits.
package report
