package pcomb_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gopeg/pcomb"
)

func TestDropDiscardsChildValue(t *testing.T) {
	vals := drive(t, pcomb.NewDrop(pcomb.EqualString("ab")), "ab")
	require.Equal(t, []pcomb.Value{pcomb.EMPTY}, vals)
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	m := pcomb.Seq(pcomb.NewLookahead(pcomb.EqualString("x")), pcomb.NewDot())
	vals := drive(t, m, "x")
	require.Equal(t, []pcomb.Value{{byte('x')}}, vals)
}

func TestLookaheadFailsWhenChildFails(t *testing.T) {
	require.Empty(t, drive(t, pcomb.NewLookahead(pcomb.EqualString("y")), "x"))
}

func TestNotSucceedsOnlyWhenChildFails(t *testing.T) {
	require.Equal(t, []pcomb.Value{pcomb.EMPTY}, drive(t, pcomb.NewNot(pcomb.EqualString("y")), "x"))
	require.Empty(t, drive(t, pcomb.NewNot(pcomb.EqualString("x")), "x"))
}

func TestAltTriesEachAlternativeInOrder(t *testing.T) {
	m := pcomb.NewAlt(pcomb.EqualString("ac"), pcomb.EqualString("ab"))
	vals := drive(t, m, "ab")
	require.Equal(t, []pcomb.Value{{"ab"}}, vals)
}

func TestAltExhaustsAllAlternatives(t *testing.T) {
	m := pcomb.NewAlt(pcomb.EqualString("a"), pcomb.EqualString("a"))
	vals := drive(t, m, "a")
	require.Equal(t, []pcomb.Value{{"a"}, {"a"}}, vals)
}

func TestSeqFlattensChildValues(t *testing.T) {
	m := pcomb.Seq(pcomb.EqualString("a"), pcomb.EqualString("b"), pcomb.EqualString("c"), pcomb.NewEos())
	vals := drive(t, m, "abc")
	require.Equal(t, []pcomb.Value{{"a", "b", "c"}}, vals)
}

func TestAndNestsChildValues(t *testing.T) {
	m := pcomb.And(pcomb.EqualString("a"), pcomb.EqualString("b"))
	vals := drive(t, m, "ab")
	want := []pcomb.Value{{pcomb.Value{"a"}, pcomb.Value{"b"}}}
	if diff := cmp.Diff(want, vals); diff != "" {
		t.Errorf("And nesting mismatch (-want +got):\n%s", diff)
	}
}

func TestSeriesBacktracksThroughAlternativeChildren(t *testing.T) {
	m := pcomb.Seq(pcomb.NewAlt(pcomb.EqualString("a"), pcomb.EqualString("a")), pcomb.EqualString("b"))
	vals := drive(t, m, "ab")
	require.Equal(t, []pcomb.Value{{"a", "b"}, {"a", "b"}}, vals)
}

func TestSeriesFailsWhenAChildNeverMatches(t *testing.T) {
	m := pcomb.Seq(pcomb.EqualString("a"), pcomb.EqualString("z"))
	require.Empty(t, drive(t, m, "ab"))
}
