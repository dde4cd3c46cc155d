package dyadic

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)

// Value is an exact rational number in lowest terms.
// A Value is never mutated after construction; every operation returns a new one.
// The zero Value is 0/1.
type Value struct {
	r *big.Rat
}

// New returns num/den reduced to lowest terms.
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, ErrZeroDenominator
	}

	return Value{r: big.NewRat(num, den)}, nil
}

// Parse reads a rational from text such as "5/8" or "0.625".
// Surrounding whitespace is ignored.
func Parse(s string) (Value, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}

	return Value{r: r}, nil
}

// Half returns 1/2, the value of the tree root.
func Half() Value {
	return Value{r: new(big.Rat).Set(ratHalf)}
}

// rat returns the backing rational, treating the zero Value as 0.
func (v Value) rat() *big.Rat {
	if v.r == nil {
		return new(big.Rat)
	}

	return v.r
}

// Num returns a copy of the reduced numerator.
func (v Value) Num() *big.Int {
	return new(big.Int).Set(v.rat().Num())
}

// Den returns a copy of the reduced denominator (always > 0).
func (v Value) Den() *big.Int {
	return new(big.Int).Set(v.rat().Denom())
}

// Equal reports whether v and o denote the same rational.
func (v Value) Equal(o Value) bool {
	return v.rat().Cmp(o.rat()) == 0
}

// Left returns (1+v)/2, the value of the p-child.
func (v Value) Left() Value {
	r := new(big.Rat).Add(ratOne, v.rat())

	return Value{r: r.Mul(r, ratHalf)}
}

// Right returns (1-v)/2, the value of the q-child.
func (v Value) Right() Value {
	r := new(big.Rat).Sub(ratOne, v.rat())

	return Value{r: r.Mul(r, ratHalf)}
}

// Child applies the affine map selected by s.
// It returns ErrInvalidSymbol for anything other than P or Q.
func (v Value) Child(s Symbol) (Value, error) {
	switch s {
	case P:
		return v.Left(), nil
	case Q:
		return v.Right(), nil
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, byte(s))
	}
}

// IsDyadic reports whether the reduced denominator is a power of two.
func (v Value) IsDyadic() bool {
	return isPowerOfTwo(v.rat().Denom())
}

// InUnitInterval reports whether 0 < v < 1.
func (v Value) InUnitInterval() bool {
	r := v.rat()

	return r.Sign() > 0 && r.Cmp(ratOne) < 0
}

// Depth returns the minimal tree depth at which v appears. A value at depth d
// has reduced denominator 2^(d+1), so Depth is bitlen(den) - 2.
// Values that are not dyadic yield ErrNotDyadic; values outside (0,1) yield
// ErrOutOfRange.
func (v Value) Depth() (int, error) {
	den := v.rat().Denom()
	if !isPowerOfTwo(den) {
		return 0, fmt.Errorf("%w: %s", ErrNotDyadic, v)
	}
	if !v.InUnitInterval() {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, v)
	}

	return den.BitLen() - 2, nil
}

// String formats the value as "num/den", or as a bare integer when den == 1.
func (v Value) String() string {
	return v.rat().RatString()
}

// isPowerOfTwo reports whether n > 0 has exactly one bit set.
func isPowerOfTwo(n *big.Int) bool {
	return n.Sign() > 0 && n.TrailingZeroBits() == uint(n.BitLen()-1)
}
