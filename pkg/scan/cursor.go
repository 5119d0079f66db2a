// Package scan provides a forward-only text cursor with character-class
// token consumption. It is the primitive underneath the symbol extractor:
// every scanning function is expressed as maximal-run consumption on top of
// a single position-tracking value.
package scan

import "unicode/utf8"

// Token is a maximal contiguous run of characters satisfying a class
// predicate, together with its byte range in the original text.
// An empty token means no match; offsets use the [start, end) convention.
type Token struct {
	// Text is the matched run, sliced from the source text.
	Text string

	// Start is the byte index where the run begins (inclusive).
	Start int

	// End is the byte index where the run ends (exclusive).
	End int
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.Start == t.End
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Cursor is an immutable view over a text buffer plus a current byte offset.
// It advances only forward and never mutates the underlying text.
type Cursor struct {
	src string
	off int
}

// New returns a cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src}
}

// Offset returns the current byte offset into the source text.
func (c *Cursor) Offset() int {
	return c.off
}

// Rest returns the remaining text from the current offset.
func (c *Cursor) Rest() string {
	return c.src[c.off:]
}

// Done reports whether the cursor has consumed all input.
func (c *Cursor) Done() bool {
	return c.off >= len(c.src)
}

// Peek returns the next character without advancing.
// ok is false when the input is exhausted.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.Done() {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.src[c.off:])
	return r, true
}

// Next consumes and returns the next character.
// ok is false when the input is exhausted.
func (c *Cursor) Next() (r rune, ok bool) {
	if c.Done() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += size
	return r, true
}

// TakeWhile consumes the longest run of consecutive characters satisfying
// pred, starting at the current position. If the first character fails the
// predicate, or the input is exhausted, the returned token is empty and the
// cursor does not move.
func (c *Cursor) TakeWhile(pred func(rune) bool) Token {
	start := c.off
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Next()
	}
	return Token{Text: c.src[start:c.off], Start: start, End: c.off}
}

// TakeWhitespace consumes a run of ASCII whitespace.
func (c *Cursor) TakeWhitespace() Token {
	return c.TakeWhile(IsASCIISpace)
}

// TakeIdentifier consumes a C-style identifier: the first character must be
// ASCII alphabetic or underscore, subsequent characters may additionally be
// ASCII digits. Returns an empty token without advancing when the current
// character cannot start an identifier.
func (c *Cursor) TakeIdentifier() Token {
	start := c.off
	r, ok := c.Peek()
	if !ok || !IsIdentStart(r) {
		return Token{Text: "", Start: start, End: start}
	}
	c.Next()
	c.TakeWhile(IsIdentRune)
	return Token{Text: c.src[start:c.off], Start: start, End: c.off}
}

// IsASCIISpace reports whether r is an ASCII whitespace character.
func IsASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsIdentStart reports whether r can begin a C identifier.
func IsIdentStart(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// IsIdentRune reports whether r can continue a C identifier.
func IsIdentRune(r rune) bool {
	return IsIdentStart(r) || (r >= '0' && r <= '9')
}
