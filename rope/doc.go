// Package rope renders an address word as rope notation: a brace-delimited
// string of numeric ids and '|' separators recording the splits performed to
// reach the addressed value.
//
// What:
//
//	Build folds the word left to right. The fold starts from the root rope
//	"{" + emph(1) + "}" with the id counter at 2, and for every symbol:
//
//	 1. inserts a bare '|' before the last '}';
//	 2. prefixes every '|' between the first '{' and the last '}' with the
//	    current id (the separator inserted in step 1 included);
//	 3. inserts emph(id) before the last '}';
//	 4. for a 'q' symbol only, swaps the byte at the first '{' with the byte
//	    at the last '|';
//	 5. increments the id.
//
//	Ids emphasized in earlier steps keep their markup.
//
// Example (default <b></b> emphasis):
//
//	""   → {<b>1</b>}
//	"p"  → {<b>1</b>2|<b>2</b>}
//	"q"  → |<b>1</b>2{<b>2</b>}
//	"qp" → |<b>1</b>2{<b>2</b>3|<b>3</b>}
//
// Every step returns a fresh string; no buffer is shared between steps, so
// Steps can hand out the whole derivation safely.
//
// Options:
//
//   - WithEmphasis(before, after)  markup wrapped around emphasized ids.
//
// Complexity:
//
//	Time O(n²) for a word of length n (each step rewrites a string of O(n) ids).
//
// Errors:
//
//   - ErrInvalidWord    the word holds a symbol other than 'p' or 'q'
//   - ErrInvalidMarkup  emphasis markup contains '{', '}' or '|'
package rope
