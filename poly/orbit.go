package poly

import (
	"github.com/NickG-Math/Symmetric-Polynomials/combin"
	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
)

// Symmetrize returns the orbit sum of c*x^exp under the permutation action
// of rel, as a new polynomial on nvars variables with ordered storage.
func Symmetrize[S scalar.Scalar[S]](nvars int, rel Relation, exp []int, c S) *Polynomial[S] {
	p := New[S](nvars, rel)
	p.InsertOrbit(exp, c)
	return p
}

// InsertOrbit adds c times the sum of the distinct monomials in the orbit
// of x^exp under the simultaneous permutation action of the relation. The
// symmetrized result is invariant regardless of repeated exponent entries.
func (p *Polynomial[S]) InsertOrbit(exp []int, c S) {
	if c.IsZero() {
		return
	}
	e := append([]int(nil), exp...)
	p.rel.Apply(e)
	perms := combin.NewPermutations(p.rel.Letters(p.nvars))
	seen := make(map[string]struct{})
	for perms.Next() {
		q := p.rel.Permute(e, perms.Permutation())
		key := expKey(q)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		p.terms.insert(p.rel.Degree(q), q, c)
	}
}

func expKey(exp []int) string {
	b := make([]byte, 0, 8*len(exp))
	b = appendExponent(b, exp)
	return string(b)
}

// MonomialBasis returns the exponent vectors of all monomials of the exact
// given degree under rel, each normalized by the relation, in the order the
// exponent odometer produces them.
func MonomialBasis(nvars, degree int, rel Relation) [][]int {
	min := make([]int, nvars)
	max := rel.MaxExponent(nvars, degree)
	it := combin.NewInterpolator(min, max, func(exp []int) combin.Status {
		switch d := rel.Degree(exp); {
		case d > degree:
			return combin.Overshoot
		case d == degree:
			return combin.Accept
		default:
			return combin.Reject
		}
	})
	var out [][]int
	for it.Next() {
		e := append([]int(nil), it.Vector()...)
		rel.Apply(e)
		out = append(out, e)
	}
	return out
}
