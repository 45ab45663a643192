package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeepCount(t *testing.T) {
	require.Equal(t, 0, KeepCount(0, 0.5))
	require.Equal(t, 1, KeepCount(3, 0.1))
	require.Equal(t, 3, KeepCount(36, 0.1))
	require.Equal(t, 5, KeepCount(10, 0.5))
	require.Equal(t, 10, KeepCount(10, 1))
}

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean([]float64{}))
	require.Equal(t, 2.0, Mean([]int{1, 2, 3}))
	require.Equal(t, 6, Sum([]int{1, 2, 3}))
}

func TestNewRand(t *testing.T) {
	a, b, c := NewRand(7), NewRand(7), NewRand(8)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	require.NotEqual(t, NewRand(7).Uint64(), c.Uint64())
}

func TestSplit(t *testing.T) {
	x := Split(NewRand(3))
	y := Split(NewRand(3))
	require.Equal(t, x.Uint64(), y.Uint64())

	parent := NewRand(3)
	first, second := Split(parent), Split(parent)
	require.NotEqual(t, first.Uint64(), second.Uint64())
}
