package rope

import (
	"errors"
	"fmt"
	"strings"
)

// Structural bytes of rope notation.
const (
	Open      = '{'
	Close     = '}'
	Separator = '|'
)

// RootID is the id of the root marker; the fold assigns RootID+1 onward.
const RootID = 1

// Sentinel errors for rope construction.
var (
	// ErrInvalidWord wraps dyadic.ErrInvalidSymbol for malformed input words.
	ErrInvalidWord = errors.New("rope: invalid address word")

	// ErrInvalidMarkup is returned when emphasis markup would collide with
	// the structural bytes '{', '}' or '|'.
	ErrInvalidMarkup = errors.New("rope: emphasis markup contains a structural byte")
)

// Option configures Build and Steps.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// EmphasisOpen is written before an emphasized id.
	EmphasisOpen string

	// EmphasisClose is written after an emphasized id.
	EmphasisClose string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns HTML bold emphasis: <b>id</b>.
func DefaultOptions() Options {
	return Options{
		EmphasisOpen:  "<b>",
		EmphasisClose: "</b>",
	}
}

// WithEmphasis sets the markup written before and after emphasized ids.
// Empty strings are allowed and render ids bare.
func WithEmphasis(before, after string) Option {
	return func(o *Options) {
		for _, m := range []string{before, after} {
			if strings.ContainsAny(m, string([]byte{Open, Close, Separator})) {
				o.err = fmt.Errorf("%w: %q", ErrInvalidMarkup, m)
				return
			}
		}
		o.EmphasisOpen, o.EmphasisClose = before, after
	}
}
