package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	require.Equal(t, int64(6), GCD(12, 18))
	require.Equal(t, int64(6), GCD(-12, 18))
	require.Equal(t, int64(6), GCD(12, -18))
	require.Equal(t, int64(5), GCD(0, 5))
	require.Equal(t, int64(0), GCD(0, 0))
	require.Equal(t, int64(1), GCD(17, 13))
}

func TestSumDot(t *testing.T) {
	require.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	require.Equal(t, 0, Sum([]int(nil)))
	require.Equal(t, 32, Dot([]int{1, 2, 3}, []int{4, 5, 6}))
	require.Panics(t, func() { Dot([]int{1}, []int{1, 2}) })
}

func TestCompareLex(t *testing.T) {
	require.Equal(t, 0, CompareLex([]int{1, 2, 3}, []int{1, 2, 3}))
	require.Equal(t, -1, CompareLex([]int{1, 2, 2}, []int{1, 2, 3}))
	require.Equal(t, 1, CompareLex([]int{2, 0, 0}, []int{1, 9, 9}))
	require.Equal(t, -1, CompareLex([]int{1, 2}, []int{1, 2, 3}))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
}
