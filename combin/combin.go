// Package combin implements lazy enumerators for permutations of n letters,
// k-combinations of n letters, and bounded integer vectors subject to an
// acceptance policy. Enumeration order is deterministic and the total count
// is available before iterating.
package combin

import "fmt"

// Factorial returns n!.
func Factorial(n int) (f int64) {
	f = 1
	for i := int64(2); i <= int64(n); i++ {
		f *= i
	}
	return
}

// Binomial returns the binomial coefficient n choose k, or 0 if k is out of
// range.
func Binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	b := int64(1)
	for i := 0; i < k; i++ {
		b = b * int64(n-i) / int64(i+1)
	}
	return b
}

// ErrTooManyChoices is returned when asking for more combination elements
// than there are letters.
var ErrTooManyChoices = fmt.Errorf("combin: more choices than letters")
