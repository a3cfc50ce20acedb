// Package poly implements monomials and polynomials in multiple variables
// subject to algebraic relations. Polynomials are degree-graded mappings from
// exponent vectors to coefficients, stored either in a total-ordered
// container (constant-time highest term) or a hash-indexed one (faster
// inserts, linear-time highest term).
package poly

import (
	"fmt"

	"github.com/NickG-Math/Symmetric-Polynomials/utils"
)

// Relation describes the algebra of a variable set: how exponents grade,
// how they normalize after a product, how the permutation action applies,
// and how variables print.
//
// MonomialProduct must report true only if the product of two monomials is
// again a monomial once the relation is applied. Both relations shipped with
// this package satisfy this, since y_i^2=y_i keeps products single-term.
type Relation interface {
	// Degree returns the degree of the monomial with the given exponent.
	Degree(exp []int) int
	// Apply normalizes an exponent in place, e.g. clamping idempotent
	// variables. It must be idempotent.
	Apply(exp []int)
	// MaxExponent returns a componentwise upper bound on the exponents of
	// monomials with the given number of variables and degree.
	MaxExponent(nvars, degree int) []int
	// Permute returns the exponent of the monomial obtained by letting the
	// permutation act on the variables.
	Permute(exp, perm []int) []int
	// Letters returns the number of letters the permutation action uses,
	// given the length of the exponent vector.
	Letters(nvars int) int
	// MonomialProduct reports whether products of monomials stay monomials.
	MonomialProduct() bool
	// Name returns the print name of variable i out of nvars.
	Name(i, nvars int) string
}

// NoRelations is the free polynomial algebra on x_1,...,x_n: every variable
// has weight 1 and exponents combine by pointwise addition.
type NoRelations struct{}

// Degree returns the sum of the exponents.
func (NoRelations) Degree(exp []int) int { return utils.Sum(exp) }

// Apply does nothing.
func (NoRelations) Apply([]int) {}

// MaxExponent bounds every exponent by the degree.
func (NoRelations) MaxExponent(nvars, degree int) []int {
	max := make([]int, nvars)
	for i := range max {
		max[i] = degree
	}
	return max
}

// Permute moves the exponent of variable i to variable perm[i].
func (NoRelations) Permute(exp, perm []int) []int {
	out := make([]int, len(exp))
	for i, e := range exp {
		out[perm[i]] = e
	}
	return out
}

// Letters returns the number of variables.
func (NoRelations) Letters(nvars int) int { return nvars }

// MonomialProduct reports true: there are no relations to expand products.
func (NoRelations) MonomialProduct() bool { return true }

// Name returns "x_i" with 1-based indexing.
func (NoRelations) Name(i, nvars int) string {
	return fmt.Sprintf("x_%d", i+1)
}

// HalfIdempotent is the algebra on x_1,...,x_n,y_1,...,y_n with y_i^2=y_i.
// The exponent vector has length 2n: the x block first, then the y block.
// Degree counts only the x block, and the y block is clamped to {0,1} after
// every combining operation.
type HalfIdempotent struct{}

// Degree returns the sum of the x-block exponents.
func (HalfIdempotent) Degree(exp []int) int {
	return utils.Sum(exp[:len(exp)/2])
}

// Apply clamps the y block to at most 1.
func (HalfIdempotent) Apply(exp []int) {
	for i := len(exp) / 2; i < len(exp); i++ {
		if exp[i] > 1 {
			exp[i] = 1
		}
	}
}

// MaxExponent bounds the x block by the degree and the y block by 1.
func (HalfIdempotent) MaxExponent(nvars, degree int) []int {
	max := make([]int, nvars)
	for i := range max {
		if i < nvars/2 {
			max[i] = degree
		} else {
			max[i] = 1
		}
	}
	return max
}

// Permute applies the same permutation independently to the x and y blocks.
func (HalfIdempotent) Permute(exp, perm []int) []int {
	n := len(exp) / 2
	out := make([]int, len(exp))
	for i := 0; i < n; i++ {
		out[perm[i]] = exp[i]
		out[n+perm[i]] = exp[n+i]
	}
	return out
}

// Letters returns half the number of variables: the permutation acts on the
// index i of the pairs x_i,y_i.
func (HalfIdempotent) Letters(nvars int) int { return nvars / 2 }

// MonomialProduct reports true: y_i^2=y_i keeps products single-term.
func (HalfIdempotent) MonomialProduct() bool { return true }

// Name returns "x_i" for the first block and "y_i" for the second.
func (HalfIdempotent) Name(i, nvars int) string {
	n := nvars / 2
	if i < n {
		return fmt.Sprintf("x_%d", i+1)
	}
	return fmt.Sprintf("y_%d", i-n+1)
}

// Graded is a relation-free variable set with externally supplied weights
// and names, used as the coordinate system of a generating basis. Degree is
// the weighted sum of the exponents against Dims.
type Graded struct {
	Dims  []int
	Names []string
}

// Degree returns the weighted exponent sum.
func (g Graded) Degree(exp []int) int { return utils.Dot(exp, g.Dims) }

// Apply does nothing.
func (Graded) Apply([]int) {}

// MaxExponent bounds exponent i by degree/Dims[i], or by the degree itself
// for weight-zero variables.
func (g Graded) MaxExponent(nvars, degree int) []int {
	max := make([]int, nvars)
	for i := range max {
		if i < len(g.Dims) && g.Dims[i] > 0 {
			max[i] = degree / g.Dims[i]
		} else {
			max[i] = degree
		}
	}
	return max
}

// Permute moves the exponent of variable i to variable perm[i].
func (Graded) Permute(exp, perm []int) []int {
	return NoRelations{}.Permute(exp, perm)
}

// Letters returns the number of variables.
func (Graded) Letters(nvars int) int { return nvars }

// MonomialProduct reports true.
func (Graded) MonomialProduct() bool { return true }

// Name returns the supplied name, or "g_i" when none was given.
func (g Graded) Name(i, nvars int) string {
	if i < len(g.Names) {
		return g.Names[i]
	}
	return fmt.Sprintf("g_%d", i+1)
}
