package poly

import (
	"sort"

	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
	"github.com/NickG-Math/Symmetric-Polynomials/utils"
)

// Term is a coefficient together with an exponent vector and its degree.
type Term[S scalar.Scalar[S]] struct {
	Coeff S
	Exp   []int
	Deg   int
}

// compareKey orders terms by degree first and lexicographically on the
// exponent to break ties. This order is what makes the highest term of a
// symmetric polynomial weakly decreasing, which the decomposition relies on.
func compareKey(degA int, expA []int, degB int, expB []int) int {
	switch {
	case degA < degB:
		return -1
	case degA > degB:
		return 1
	}
	return utils.CompareLex(expA, expB)
}

// container is the term storage of a Polynomial. Both implementations keep
// the no-zero-coefficients invariant: accumulating inserts erase entries
// whose coefficient cancels to zero.
type container[S scalar.Scalar[S]] interface {
	// insert adds c to the coefficient at exp, creating or erasing the
	// entry as needed. The exponent is copied.
	insert(deg int, exp []int, c S)
	// coeff returns the coefficient at exp, if present.
	coeff(deg int, exp []int) (S, bool)
	// highest returns the term maximal in the (degree, exponent) order.
	highest() (Term[S], bool)
	// scan calls f on every term until f returns false. The ordered
	// container scans in increasing (degree, exponent) order; the
	// hash-indexed one in arbitrary order.
	scan(f func(t Term[S]) bool)
	len() int
	clone() container[S]
}

// ordered stores terms as a slice sorted in increasing (degree, exponent)
// order. The highest term is the last entry, in constant time; inserts pay
// a binary search plus a shift.
type ordered[S scalar.Scalar[S]] struct {
	terms []Term[S]
}

func (o *ordered[S]) search(deg int, exp []int) (int, bool) {
	i := sort.Search(len(o.terms), func(i int) bool {
		return compareKey(o.terms[i].Deg, o.terms[i].Exp, deg, exp) >= 0
	})
	found := i < len(o.terms) && o.terms[i].Deg == deg && utils.EqualSlice(o.terms[i].Exp, exp)
	return i, found
}

func (o *ordered[S]) insert(deg int, exp []int, c S) {
	i, found := o.search(deg, exp)
	if found {
		sum := o.terms[i].Coeff.Add(c)
		if sum.IsZero() {
			o.terms = append(o.terms[:i], o.terms[i+1:]...)
		} else {
			o.terms[i].Coeff = sum
		}
		return
	}
	t := Term[S]{Coeff: c, Exp: append([]int(nil), exp...), Deg: deg}
	o.terms = append(o.terms, Term[S]{})
	copy(o.terms[i+1:], o.terms[i:])
	o.terms[i] = t
}

func (o *ordered[S]) coeff(deg int, exp []int) (S, bool) {
	if i, found := o.search(deg, exp); found {
		return o.terms[i].Coeff, true
	}
	var zero S
	return zero, false
}

func (o *ordered[S]) highest() (Term[S], bool) {
	if len(o.terms) == 0 {
		return Term[S]{}, false
	}
	return o.terms[len(o.terms)-1], true
}

func (o *ordered[S]) scan(f func(t Term[S]) bool) {
	for _, t := range o.terms {
		if !f(t) {
			return
		}
	}
}

func (o *ordered[S]) len() int { return len(o.terms) }

func (o *ordered[S]) clone() container[S] {
	terms := make([]Term[S], len(o.terms))
	for i, t := range o.terms {
		terms[i] = Term[S]{Coeff: t.Coeff, Exp: append([]int(nil), t.Exp...), Deg: t.Deg}
	}
	return &ordered[S]{terms: terms}
}

// unordered stores terms in hash buckets keyed by the injected Hasher.
// Inserts are expected constant time; the highest term is a linear scan
// over all terms.
type unordered[S scalar.Scalar[S]] struct {
	hasher  Hasher
	buckets map[uint64][]Term[S]
	n       int
}

func newUnordered[S scalar.Scalar[S]](h Hasher) *unordered[S] {
	if h == nil {
		h = DefaultHasher()
	}
	return &unordered[S]{hasher: h, buckets: make(map[uint64][]Term[S])}
}

func (u *unordered[S]) insert(deg int, exp []int, c S) {
	key := u.hasher.Sum64(exp)
	bucket := u.buckets[key]
	for i, t := range bucket {
		if utils.EqualSlice(t.Exp, exp) {
			sum := t.Coeff.Add(c)
			if sum.IsZero() {
				bucket = append(bucket[:i], bucket[i+1:]...)
				if len(bucket) == 0 {
					delete(u.buckets, key)
				} else {
					u.buckets[key] = bucket
				}
				u.n--
			} else {
				bucket[i].Coeff = sum
			}
			return
		}
	}
	u.buckets[key] = append(bucket, Term[S]{Coeff: c, Exp: append([]int(nil), exp...), Deg: deg})
	u.n++
}

func (u *unordered[S]) coeff(deg int, exp []int) (S, bool) {
	for _, t := range u.buckets[u.hasher.Sum64(exp)] {
		if utils.EqualSlice(t.Exp, exp) {
			return t.Coeff, true
		}
	}
	var zero S
	return zero, false
}

func (u *unordered[S]) highest() (Term[S], bool) {
	var max Term[S]
	var found bool
	for _, bucket := range u.buckets {
		for _, t := range bucket {
			if !found || compareKey(max.Deg, max.Exp, t.Deg, t.Exp) < 0 {
				max = t
				found = true
			}
		}
	}
	return max, found
}

func (u *unordered[S]) scan(f func(t Term[S]) bool) {
	for _, bucket := range u.buckets {
		for _, t := range bucket {
			if !f(t) {
				return
			}
		}
	}
}

func (u *unordered[S]) len() int { return u.n }

func (u *unordered[S]) clone() container[S] {
	c := newUnordered[S](u.hasher)
	u.scan(func(t Term[S]) bool {
		c.insert(t.Deg, t.Exp, t.Coeff)
		return true
	})
	return c
}
