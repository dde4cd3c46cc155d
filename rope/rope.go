package rope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dyadtree/dyadic"
)

// Build returns the rope notation of w. The empty word yields the root rope.
func Build(w dyadic.Word, opts ...Option) (string, error) {
	steps, err := Steps(w, opts...)
	if err != nil {
		return "", err
	}

	return steps[len(steps)-1], nil
}

// Steps returns the whole derivation of w: the root rope followed by the
// rope after each symbol. The last element equals Build(w).
func Steps(w dyadic.Word, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}

	steps := make([]string, 0, w.Len()+1)
	cur := string(Open) + o.emphasize(RootID) + string(Close)
	steps = append(steps, cur)

	id := RootID + 1
	for _, s := range w.Symbols() {
		cur = o.fold(cur, id, s)
		steps = append(steps, cur)
		id++
	}

	return steps, nil
}

// fold applies one symbol to prev and returns the new rope.
func (o Options) fold(prev string, id int, s dyadic.Symbol) string {
	next := insertSeparator(prev)
	next = relabel(next, strconv.Itoa(id))
	next = insertBeforeClose(next, o.emphasize(id))
	if s == dyadic.Q {
		next = swapOpenWithLastSeparator(next)
	}

	return next
}

// emphasize wraps id in the emphasis markup.
func (o Options) emphasize(id int) string {
	return o.EmphasisOpen + strconv.Itoa(id) + o.EmphasisClose
}

// insertSeparator returns rope with a bare separator before its last '}'.
func insertSeparator(rope string) string {
	return insertBeforeClose(rope, string(Separator))
}

// insertBeforeClose returns rope with text inserted before its last '}'.
func insertBeforeClose(rope, text string) string {
	at := strings.LastIndexByte(rope, Close)
	if at < 0 {
		at = len(rope)
	}

	var b strings.Builder
	b.Grow(len(rope) + len(text))
	b.WriteString(rope[:at])
	b.WriteString(text)
	b.WriteString(rope[at:])

	return b.String()
}

// relabel prefixes label to every separator between the first '{' and the
// last '}'. Separators outside that span are left alone.
func relabel(rope, label string) string {
	start := strings.IndexByte(rope, Open)
	end := strings.LastIndexByte(rope, Close)
	if start < 0 || end < start {
		return rope
	}

	inside := strings.ReplaceAll(rope[start+1:end], string(Separator), label+string(Separator))

	return rope[:start+1] + inside + rope[end:]
}

// swapOpenWithLastSeparator exchanges the first '{' and the last '|'.
// The '{' can end up after separators that later steps no longer relabel.
func swapOpenWithLastSeparator(rope string) string {
	brace := strings.IndexByte(rope, Open)
	sep := strings.LastIndexByte(rope, Separator)
	if brace < 0 || sep < 0 {
		return rope
	}

	b := []byte(rope)
	b[brace], b[sep] = b[sep], b[brace]

	return string(b)
}
