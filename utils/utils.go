// Package utils implements generic helper functions on slices and integers
// shared by the polynomial packages.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GCD computes the greatest common divisor of a and b.
// The result is always non-negative.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Sum returns the sum of the entries of s.
func Sum[T constraints.Integer](s []T) (sum T) {
	for _, si := range s {
		sum += si
	}
	return
}

// Dot returns the componentwise product-sum of a and b.
// Panics if the slices have different lengths.
func Dot[T constraints.Integer](a, b []T) (dot T) {
	if len(a) != len(b) {
		panic("utils: Dot on slices of different lengths")
	}
	for i := range a {
		dot += a[i] * b[i]
	}
	return
}

// CompareLex compares a and b lexicographically, returning -1, 0 or 1.
// Slices of different lengths compare by length first.
func CompareLex[T constraints.Ordered](a, b []T) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// EqualSlice checks the componentwise equality of a and b.
func EqualSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	SortSlice(keys)
	return
}
