// Package basis writes permutation-invariant polynomials in terms of an
// algebra generating set and expands them back. Each generator family
// supplies its generator polynomials and a rule matching a leading monomial
// to the generator powers whose product has that monomial as leading term;
// the greedy subtraction engine here is shared by all families.
package basis

import (
	"fmt"

	"github.com/NickG-Math/Symmetric-Polynomials/poly"
	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
	"github.com/NickG-Math/Symmetric-Polynomials/utils"
)

// ErrNotSymmetric is returned by Decompose when the input polynomial is not
// invariant under the permutation action, so no generator powers can match
// its leading term.
var ErrNotSymmetric = fmt.Errorf("basis: polynomial is not invariant under the permutation action")

// ErrNotDecomposable is returned by Decompose when subtracting the matched
// generator product fails to shrink the leading term. It indicates a
// generator family whose matching rule is wrong for the input, not a user
// error.
var ErrNotDecomposable = fmt.Errorf("basis: leading term does not shrink, generator matching rule is inconsistent")

// FindExponent locates, for the exponent of a leading monomial, the tuple
// of generator powers whose product has exactly that leading monomial.
type FindExponent func(exp []int) ([]int, error)

// Basis is a generating set for a subring of a polynomial ring: the
// generator polynomials over the original variables, the graded coordinate
// system they span, and the family's matching rule. Constructed once per
// variable count and immutable afterwards.
type Basis[S scalar.Scalar[S]] struct {
	nvars  int
	rel    poly.Relation
	gens   []*poly.Polynomial[S]
	coords poly.Graded
	find   FindExponent
}

// NumVariables returns the number of original variables.
func (b *Basis[S]) NumVariables() int { return b.nvars }

// NumGenerators returns the number of generators.
func (b *Basis[S]) NumGenerators() int { return len(b.gens) }

// Generator returns generator i as a polynomial over the original
// variables. The returned polynomial is shared and must not be modified.
func (b *Basis[S]) Generator(i int) *poly.Polynomial[S] { return b.gens[i] }

// Coords returns the graded relation of the generator coordinate space,
// carrying the generator degrees and names.
func (b *Basis[S]) Coords() poly.Graded { return b.coords }

// ZeroCoords returns the zero polynomial over the generator coordinates.
func (b *Basis[S]) ZeroCoords() *poly.Polynomial[S] {
	return poly.New[S](len(b.gens), b.coords)
}

// Decompose writes a as a polynomial over the generator coordinates.
// It repeatedly matches the leading term of the remainder to a tuple of
// generator powers, divides out the leading coefficients and subtracts,
// until the remainder vanishes. a is not modified.
func (b *Basis[S]) Decompose(a *poly.Polynomial[S]) (*poly.Polynomial[S], error) {
	return b.decompose(a, nil)
}

// decompose runs the subtraction loop, reporting every leading term to
// observe when non-nil. The loop enforces the engine's central invariant:
// the product of the matched generator powers has the same leading monomial
// as the remainder, so each subtraction strictly decreases the leading term
// in the (degree, exponent) order.
func (b *Basis[S]) decompose(a *poly.Polynomial[S], observe func(t poly.Term[S])) (*poly.Polynomial[S], error) {
	out := b.ZeroCoords()
	rest := a.CopyNew()
	var prev *poly.Term[S]
	for !rest.IsZero() {
		max, _ := rest.HighestTerm()
		if observe != nil {
			observe(max)
		}
		if prev != nil && !termLess(max, *prev) {
			return nil, ErrNotDecomposable
		}
		exp, err := b.find(max.Exp)
		if err != nil {
			return nil, err
		}
		prod := b.Product(exp)
		lead, ok := prod.HighestTerm()
		if !ok || !utils.EqualSlice(lead.Exp, max.Exp) {
			return nil, fmt.Errorf("%w: leading monomial of matched product differs from %v", ErrNotDecomposable, max.Exp)
		}
		c := max.Coeff.Div(lead.Coeff)
		out.Insert(exp, c)
		rest.Sub(prod.MulScalar(c))
		prev = &max
	}
	return out, nil
}

// Expand writes a generator-coordinate polynomial back in the original
// variables by expanding every generator power product.
func (b *Basis[S]) Expand(a *poly.Polynomial[S]) (*poly.Polynomial[S], error) {
	if a.N() != len(b.gens) {
		return nil, fmt.Errorf("basis: polynomial on %d coordinates, basis has %d generators", a.N(), len(b.gens))
	}
	out := poly.New[S](b.nvars, b.rel)
	for _, t := range a.Terms() {
		out.Add(b.Product(t.Exp).MulScalar(t.Coeff))
	}
	return out, nil
}

// Product expands the generator-coordinate monomial exp as a polynomial
// over the original variables, multiplying out the indicated generator
// powers.
func (b *Basis[S]) Product(exp []int) *poly.Polynomial[S] {
	prod := poly.NewConstant[S](b.nvars, b.rel, scalar.One[S]())
	for i, e := range exp {
		if e != 0 {
			prod = prod.Mul(b.gens[i].Pow(e))
		}
	}
	return prod
}

// termLess reports whether a precedes b in the (degree, exponent) order.
func termLess[S scalar.Scalar[S]](a, b poly.Term[S]) bool {
	if a.Deg != b.Deg {
		return a.Deg < b.Deg
	}
	return utils.CompareLex(a.Exp, b.Exp) < 0
}
