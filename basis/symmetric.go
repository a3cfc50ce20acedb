package basis

import (
	"fmt"

	"github.com/NickG-Math/Symmetric-Polynomials/combin"
	"github.com/NickG-Math/Symmetric-Polynomials/poly"
	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
)

// NewSymmetric returns the elementary symmetric basis e_1,...,e_n for
// symmetric polynomials on n relation-free variables: e_i is the sum over
// all i-subsets of the variables of the product of the chosen variables.
func NewSymmetric[S scalar.Scalar[S]](n int) *Basis[S] {
	gens := make([]*poly.Polynomial[S], n)
	dims := make([]int, n)
	names := make([]string, n)
	for i := 1; i <= n; i++ {
		gens[i-1] = elementarySymmetric[S](n, 0, n, i, poly.NoRelations{})
		dims[i-1] = i
		names[i-1] = fmt.Sprintf("e_%d", i)
	}
	return &Basis[S]{
		nvars:  n,
		rel:    poly.NoRelations{},
		gens:   gens,
		coords: poly.Graded{Dims: dims, Names: names},
		find:   staircase(n),
	}
}

// elementarySymmetric builds the sum over all k-subsets of n letters of the
// monomial with exponent 1 at offset+chosen slots, on nvars variables under
// rel. The offset lets the half-idempotent family reuse this for its x
// block.
func elementarySymmetric[S scalar.Scalar[S]](nvars, offset, n, k int, rel poly.Relation) *poly.Polynomial[S] {
	p := poly.New[S](nvars, rel)
	one := scalar.One[S]()
	combs, err := combin.NewCombinations(n, k)
	if err != nil {
		panic(err)
	}
	exp := make([]int, nvars)
	for combs.Next() {
		for _, j := range combs.Combination() {
			exp[offset+j] = 1
		}
		p.Insert(exp, one)
		for _, j := range combs.Combination() {
			exp[offset+j] = 0
		}
	}
	return p
}

// staircase returns the elementary symmetric matching rule: the leading
// exponent [a_1,...,a_n] of a symmetric polynomial is weakly decreasing,
// and equals the leading exponent of e_1^{a_1-a_2} e_2^{a_2-a_3} ... e_n^{a_n}.
func staircase(n int) FindExponent {
	return func(exp []int) ([]int, error) {
		out := make([]int, n)
		for i := 0; i < n; i++ {
			d := exp[i]
			if i < n-1 {
				d -= exp[i+1]
			}
			if d < 0 {
				return nil, fmt.Errorf("%w: leading exponent %v is not weakly decreasing", ErrNotSymmetric, exp)
			}
			out[i] = d
		}
		return out, nil
	}
}
