package pcomb_test

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/gopeg/pcomb"
	"github.com/gopeg/pcomb/driver"
)

func runOnce(m pcomb.Matcher, input string) (pcomb.Value, bool, error) {
	return driver.New(m, newCursor(input)).Next()
}

// strCursor is a minimal byte-addressed pcomb.Cursor over a string, used to
// exercise the combinators without pulling in the source package.
type strCursor struct {
	s   string
	pos int
}

func newCursor(s string) strCursor { return strCursor{s: s, pos: 0} }

func (c strCursor) IsEnd() bool { return c.pos >= len(c.s) }

func (c strCursor) Next() (token any, next pcomb.Cursor) {
	return c.s[c.pos], strCursor{s: c.s, pos: c.pos + 1}
}

func (c strCursor) SubstringFrom() string { return c.s[c.pos:] }

func (c strCursor) Hash() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d", c.pos)
	return d.Sum64()
}
