package pcomb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopeg/pcomb"
	"github.com/gopeg/pcomb/driver"
)

func drive(t *testing.T, m pcomb.Matcher, input string) (vals []pcomb.Value) {
	t.Helper()
	d := driver.New(m, newCursor(input))
	for {
		v, ok, err := d.Next()
		require.NoError(t, err)
		if !ok {
			return vals
		}
		vals = append(vals, v)
	}
}

func TestEpsilonMatchesOnceWithoutConsuming(t *testing.T) {
	vals := drive(t, pcomb.NewEpsilon(), "abc")
	require.Equal(t, []pcomb.Value{pcomb.EMPTY}, vals)
}

func TestInsertInjectsSyntheticToken(t *testing.T) {
	vals := drive(t, pcomb.NewInsert("synthetic"), "")
	require.Equal(t, []pcomb.Value{{"synthetic"}}, vals)
}

func TestDotConsumesExactlyOneToken(t *testing.T) {
	vals := drive(t, pcomb.NewDot(), "x")
	require.Equal(t, []pcomb.Value{{byte('x')}}, vals)

	vals = drive(t, pcomb.NewDot(), "")
	require.Empty(t, vals)
}

func TestFailNeverMatches(t *testing.T) {
	vals := drive(t, pcomb.NewFail(), "abc")
	require.Empty(t, vals)
}

func TestEosOnlyAtEndOfInput(t *testing.T) {
	require.Empty(t, drive(t, pcomb.NewEos(), "a"))
	require.Equal(t, []pcomb.Value{pcomb.EMPTY}, drive(t, pcomb.NewEos(), ""))
}

func TestEqualStringMatchesWholeSequence(t *testing.T) {
	vals := drive(t, pcomb.EqualString("ab"), "abc")
	require.Equal(t, []pcomb.Value{{"ab"}}, vals)

	require.Empty(t, drive(t, pcomb.EqualString("ac"), "abc"))
	require.Empty(t, drive(t, pcomb.EqualString("abcd"), "abc"))
}
