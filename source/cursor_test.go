package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorWalk(t *testing.T) {
	src := New("", []byte("ab"))
	c := NewCursor(src)
	require.False(t, c.IsEnd())

	tok, next := c.Next()
	require.Equal(t, byte('a'), tok)
	require.False(t, next.(Cursor).IsEnd())

	tok2, next2 := next.(Cursor).Next()
	require.Equal(t, byte('b'), tok2)
	require.True(t, next2.(Cursor).IsEnd())
}

func TestCursorSubstringFrom(t *testing.T) {
	src := New("", []byte("hello"))
	c := NewCursor(src)
	_, next := c.Next()
	require.Equal(t, "ello", next.(Cursor).SubstringFrom())
}

func TestCursorHashStable(t *testing.T) {
	src := New("", []byte("xyz"))
	c1 := NewCursor(src)
	c2 := NewCursor(src)
	require.Equal(t, c1.Hash(), c2.Hash())

	_, next := c1.Next()
	require.NotEqual(t, c1.Hash(), next.(Cursor).Hash())
}
