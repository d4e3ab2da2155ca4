package pcomb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopeg/pcomb"
)

func TestBreadthYieldsShallowestFirst(t *testing.T) {
	m := pcomb.NewBreadth(pcomb.NewDot(), 2, 3, true)
	vals := drive(t, m, "aaaa")
	require.Equal(t, []pcomb.Value{
		{byte('a'), byte('a')},
		{byte('a'), byte('a'), byte('a')},
	}, vals)
}

func TestBreadthRespectsHiBound(t *testing.T) {
	m := pcomb.NewBreadth(pcomb.NewDot(), 0, 1, true)
	vals := drive(t, m, "aa")
	require.Equal(t, []pcomb.Value{
		{},
		{byte('a')},
	}, vals)
}

func TestBreadthFailsWhenLoUnreachable(t *testing.T) {
	m := pcomb.NewBreadth(pcomb.NewDot(), 3, pcomb.Unbounded, true)
	vals := drive(t, m, "aa")
	require.Empty(t, vals)
}
