package wordfind

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// finder carries the fixed inputs of one search.
type finder struct {
	target   dyadic.Value
	maxDepth int
	opts     Options
}

// Find returns the address word whose value equals target exactly, searching
// no deeper than maxDepth. It returns ErrNotFound when the target cannot be
// reached, never an approximate word.
func Find(target dyadic.Value, maxDepth int, opts ...Option) (dyadic.Word, error) {
	if maxDepth < 0 {
		return dyadic.Root, fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return dyadic.Root, o.err
	}
	if o.DepthLimit >= 0 && maxDepth > o.DepthLimit {
		return dyadic.Root, fmt.Errorf("%w: %d > %d", ErrDepthLimit, maxDepth, o.DepthLimit)
	}

	f := &finder{target: target, maxDepth: maxDepth, opts: o}
	w, ok, err := f.search(dyadic.Half(), dyadic.Root, 0)
	if err != nil {
		return dyadic.Root, err
	}
	if !ok {
		return dyadic.Root, fmt.Errorf("%w: %s (max depth %d)", ErrNotFound, target, maxDepth)
	}

	return w, nil
}

// search explores the node (c, w) at depth, p-branch before q-branch.
// A hook error stops the whole search.
func (f *finder) search(c dyadic.Value, w dyadic.Word, depth int) (dyadic.Word, bool, error) {
	if depth > f.maxDepth {
		return dyadic.Root, false, nil
	}

	if err := f.opts.OnVisit(c, w, depth); err != nil {
		return dyadic.Root, false, fmt.Errorf("wordfind: OnVisit at %q: %w", w.String(), err)
	}
	if c.Equal(f.target) {
		return w, true, nil
	}

	found, ok, err := f.search(c.Left(), w.Append(dyadic.P), depth+1)
	if err != nil || ok {
		return found, ok, err
	}

	return f.search(c.Right(), w.Append(dyadic.Q), depth+1)
}

// FindFraction validates num/den the way an input form does and then runs
// Find with maxDepth = bitlen(den) - 1. The denominator is checked as
// entered, before reduction: 2/8 is accepted and searched to depth 3.
// Fractions outside (0,1) are rejected with dyadic.ErrOutOfRange instead of
// being searched, since no node carries them.
// It returns the word and the depth bound used.
func FindFraction(num, den int64, opts ...Option) (dyadic.Word, int, error) {
	if den <= 0 || den&(den-1) != 0 {
		return dyadic.Root, 0, fmt.Errorf("%w: %d", ErrNotDyadic, den)
	}

	target, err := dyadic.New(num, den)
	if err != nil {
		return dyadic.Root, 0, fmt.Errorf("wordfind: target %d/%d: %w", num, den, err)
	}
	if !target.InUnitInterval() {
		return dyadic.Root, 0, fmt.Errorf("wordfind: target %d/%d: %w", num, den, dyadic.ErrOutOfRange)
	}

	maxDepth := bits.Len64(uint64(den)) - 1
	w, err := Find(target, maxDepth, opts...)
	if err != nil {
		return dyadic.Root, maxDepth, err
	}

	return w, maxDepth, nil
}
