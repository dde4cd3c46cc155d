package wordfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// Sentinel errors for word search.
var (
	// ErrNotFound reports that no word of length <= maxDepth addresses the target.
	ErrNotFound = errors.New("wordfind: target not reachable within max depth")

	// ErrNegativeDepth is returned when maxDepth < 0.
	ErrNegativeDepth = errors.New("wordfind: max depth must be non-negative")

	// ErrNotDyadic is returned by FindFraction when den is not a positive power of two.
	ErrNotDyadic = errors.New("wordfind: denominator must be a power of two")

	// ErrDepthLimit is returned when the requested max depth exceeds the
	// limit set with WithDepthLimit.
	ErrDepthLimit = errors.New("wordfind: max depth exceeds depth limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordfind: invalid option supplied")
)

// Option configures Find via functional arguments.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	// OnVisit is called for each examined node before it is compared
	// with the target, in search order. Returning an error aborts the
	// search with that error.
	OnVisit func(v dyadic.Value, w dyadic.Word, depth int) error

	// DepthLimit, if non-negative, rejects any search whose max depth is
	// larger. Default is -1 (no limit).
	DepthLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op OnVisit hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(dyadic.Value, dyadic.Word, int) error { return nil },
		DepthLimit: -1,
	}
}

// WithOnVisit installs fn as the pre-order visit hook.
// A nil fn is an ErrOptionViolation.
func WithOnVisit(fn func(v dyadic.Value, w dyadic.Word, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnVisit cannot be nil", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// WithDepthLimit caps the max depth a search may be asked for. The search
// visits up to 2^(maxDepth+1) - 1 nodes, so front ends taking user input
// should set one. A negative limit is an ErrOptionViolation.
func WithDepthLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.DepthLimit = limit
	}
}
