package dyadic

import "errors"

// Symbol is a single letter of an address word.
type Symbol byte

const (
	// P selects the left child, value (1+v)/2.
	P Symbol = 'p'

	// Q selects the right child, value (1-v)/2.
	Q Symbol = 'q'
)

// Sentinel errors for value and word construction.
var (
	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("dyadic: zero denominator")

	// ErrInvalidValue is returned by Parse for text that is not a rational number.
	ErrInvalidValue = errors.New("dyadic: invalid rational value")

	// ErrNotDyadic indicates that the reduced denominator is not a power of two.
	ErrNotDyadic = errors.New("dyadic: denominator is not a power of two")

	// ErrOutOfRange indicates a value outside the open interval (0,1).
	ErrOutOfRange = errors.New("dyadic: value outside (0,1)")

	// ErrInvalidSymbol indicates a word byte outside the alphabet {p, q}.
	ErrInvalidSymbol = errors.New("dyadic: invalid word symbol")
)

// Valid reports whether s belongs to the alphabet {p, q}.
func (s Symbol) Valid() bool {
	return s == P || s == Q
}

// String returns the symbol as a one-letter string.
func (s Symbol) String() string {
	return string(rune(s))
}
