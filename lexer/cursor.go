package lexer

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/gopeg/pcomb"
)

// TokenCursor is a pcomb.Cursor over a fixed slice of already-lexed tokens,
// letting a grammar match Equal/Dot-style combinators against token values
// instead of raw bytes. It does not implement pcomb.Substringer, so Pattern
// reports a ConfigError over it. It implements pcomb.Hashable so the
// driver's memoization cache can key on it.
type TokenCursor struct {
	tokens []*Token
	pos    int
}

// NewTokenCursor wraps tokens at position 0.
func NewTokenCursor(tokens []*Token) *TokenCursor {
	return &TokenCursor{tokens: tokens, pos: 0}
}

// IsEnd reports whether every token has been consumed.
func (c *TokenCursor) IsEnd() bool {
	return c.pos >= len(c.tokens)
}

// Next returns the current *Token and a cursor advanced past it.
func (c *TokenCursor) Next() (token any, next pcomb.Cursor) {
	return c.tokens[c.pos], &TokenCursor{tokens: c.tokens, pos: c.pos + 1}
}

// Hash implements pcomb.Hashable.
func (c *TokenCursor) Hash() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%p:%d", c.tokens, c.pos)
	return d.Sum64()
}

// Token returns the token at the cursor, or nil at end of stream.
func (c *TokenCursor) Token() *Token {
	if c.IsEnd() {
		return nil
	}
	return c.tokens[c.pos]
}

// Pos reports the index into the token slice.
func (c *TokenCursor) Pos() int { return c.pos }
