package source

import (
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/gopeg/pcomb"
)

// Cursor is source's implementation of the pcomb.Cursor contract: an
// immutable (pointer, byte offset) pair. Two Cursors over the same Source at
// the same offset compare equal with ==, since Go compares the *Source
// pointers by identity.
type Cursor struct {
	src *Source
	pos int
}

// NewCursor starts a Cursor at the beginning of src.
func NewCursor(src *Source) Cursor {
	return Cursor{src: src, pos: 0}
}

// Source returns the underlying Source.
func (c Cursor) Source() *Source { return c.src }

// Pos returns the byte offset into Source.Content.
func (c Cursor) Pos() int { return c.pos }

// IsEnd reports whether the cursor has reached the end of the source.
func (c Cursor) IsEnd() bool {
	return c.pos >= c.src.Len()
}

// Next returns the next byte and the cursor advanced past it.
//
// Tokens are single bytes rather than runes so that Equal and Dot behave
// predictably against binary-ish input too; grammars that care about
// Unicode reach for Pattern, which works against the decoded string view.
func (c Cursor) Next() (token any, next pcomb.Cursor) {
	b := c.src.Content()[c.pos]
	return b, Cursor{src: c.src, pos: c.pos + 1}
}

// SubstringFrom implements pcomb.Substringer, giving Pattern a string view
// of the remaining input.
func (c Cursor) SubstringFrom() string {
	return string(c.src.Content()[c.pos:])
}

// Hash implements pcomb.Hashable for the driver's memoization cache.
func (c Cursor) Hash() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%p:%d", c.src, c.pos)
	return d.Sum64()
}

// LineCol is a convenience wrapper for error reporting from a Cursor's
// current position.
func (c Cursor) LineCol() (line, col int) {
	return c.src.LineCol(c.pos)
}

// RuneCount reports how many runes remain from the cursor to the end of
// input, for callers that want a character count rather than a byte (token)
// count.
func (c Cursor) RuneCount() int {
	return utf8.RuneCount(c.src.Content()[c.pos:])
}
