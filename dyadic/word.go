package dyadic

import (
	"fmt"
	"strings"
)

// Word is an address in the subdivision tree: a sequence of P and Q symbols
// read from the root. The empty Word addresses the root itself.
// Word is a string type and therefore immutable.
type Word string

// Root is the empty word.
const Root Word = ""

// ParseWord validates s and returns it as a Word.
// Any byte other than 'p' or 'q' yields ErrInvalidSymbol.
func ParseWord(s string) (Word, error) {
	w := Word(s)
	if err := w.Validate(); err != nil {
		return Root, err
	}

	return w, nil
}

// Validate reports the first byte outside the alphabet {p, q}, if any.
func (w Word) Validate() error {
	for i := 0; i < len(w); i++ {
		if !Symbol(w[i]).Valid() {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, w[i], i)
		}
	}

	return nil
}

// Len returns the number of symbols, which equals the tree depth of w.
func (w Word) Len() int {
	return len(w)
}

// At returns the i-th symbol. It panics if i is out of range, like indexing.
func (w Word) At(i int) Symbol {
	return Symbol(w[i])
}

// Append returns a new word with s added at the end.
func (w Word) Append(s Symbol) Word {
	var b strings.Builder
	b.Grow(len(w) + 1)
	b.WriteString(string(w))
	b.WriteByte(byte(s))

	return Word(b.String())
}

// Symbols returns the symbols of w in order.
func (w Word) Symbols() []Symbol {
	out := make([]Symbol, len(w))
	for i := 0; i < len(w); i++ {
		out[i] = Symbol(w[i])
	}

	return out
}

// Value replays w from the root 1/2 through the affine maps and returns the
// value it addresses. Returns ErrInvalidSymbol for malformed words.
func (w Word) Value() (Value, error) {
	v := Half()
	var err error
	for i := 0; i < len(w); i++ {
		if v, err = v.Child(Symbol(w[i])); err != nil {
			return Value{}, fmt.Errorf("dyadic: replay %q at offset %d: %w", string(w), i, err)
		}
	}

	return v, nil
}

// String returns the word as plain text ("" for the root).
func (w Word) String() string {
	return string(w)
}
