package combin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorialBinomial(t *testing.T) {
	require.Equal(t, int64(1), Factorial(0))
	require.Equal(t, int64(1), Factorial(1))
	require.Equal(t, int64(120), Factorial(5))

	require.Equal(t, int64(10), Binomial(5, 2))
	require.Equal(t, int64(10), Binomial(5, 3))
	require.Equal(t, int64(1), Binomial(4, 0))
	require.Equal(t, int64(0), Binomial(4, 5))
	require.Equal(t, int64(0), Binomial(4, -1))
}

func TestPermutations(t *testing.T) {
	perms := AllPermutations(3)
	require.Equal(t, [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}, perms)

	p := NewPermutations(4)
	require.Equal(t, int64(24), p.Count())
	var count int
	for p.Next() {
		count++
	}
	require.Equal(t, 24, count)
	require.False(t, p.Next())

	p.Reset()
	require.True(t, p.Next())
	require.Equal(t, []int{0, 1, 2, 3}, p.Permutation())
}

func TestCombinations(t *testing.T) {
	combs, err := AllCombinations(4, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0, 1},
		{0, 2},
		{0, 3},
		{1, 2},
		{1, 3},
		{2, 3},
	}, combs)

	c, err := NewCombinations(6, 3)
	require.NoError(t, err)
	require.Equal(t, int64(20), c.Count())
	var count int
	for c.Next() {
		count++
	}
	require.Equal(t, 20, count)

	_, err = NewCombinations(3, 4)
	require.ErrorIs(t, err, ErrTooManyChoices)
	_, err = NewCombinations(3, -1)
	require.ErrorIs(t, err, ErrTooManyChoices)

	// The empty combination is still one combination.
	c, err = NewCombinations(3, 0)
	require.NoError(t, err)
	require.True(t, c.Next())
	require.Empty(t, c.Combination())
	require.False(t, c.Next())
}

func TestInterpolator(t *testing.T) {
	it := NewInterpolator([]int{0, 0}, []int{1, 2}, nil)
	require.Equal(t, int64(6), it.Count())
	var got [][]int
	for it.Next() {
		got = append(got, append([]int(nil), it.Vector()...))
	}
	require.Equal(t, [][]int{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2},
	}, got)
}

func TestInterpolatorPolicy(t *testing.T) {
	// Accept vectors of entry-sum exactly 2, overshooting beyond it.
	policy := func(v []int) Status {
		var sum int
		for _, vi := range v {
			sum += vi
		}
		switch {
		case sum > 2:
			return Overshoot
		case sum == 2:
			return Accept
		default:
			return Reject
		}
	}
	it := NewInterpolator([]int{0, 0, 0}, []int{2, 2, 2}, policy)
	var got [][]int
	for it.Next() {
		got = append(got, append([]int(nil), it.Vector()...))
	}
	require.ElementsMatch(t, [][]int{
		{2, 0, 0}, {1, 1, 0}, {0, 2, 0}, {1, 0, 1}, {0, 1, 1}, {0, 0, 2},
	}, got)
}
