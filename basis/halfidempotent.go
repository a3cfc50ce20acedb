package basis

import (
	"fmt"

	"github.com/NickG-Math/Symmetric-Polynomials/combin"
	"github.com/NickG-Math/Symmetric-Polynomials/poly"
	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
)

// HalfIdempotentBasis generates the fixed points of
// Q[x_1,...,x_n,y_1,...,y_n]/(y_i^2=y_i) under the permutation action
// moving the x_i and y_i simultaneously. The generators are indexed by
// pairs (s,j) with 0 <= s, 0 <= j, 1 <= s+j <= n, ordered lexicographically:
//
//	(0,j): c_j, the j-th elementary symmetric polynomial in the x block
//	(s,0): a_s = (y_1+...+y_n)^s, of degree 0
//	(s,j): the twisted Chern class c_{s,j}, mixing s x-slots with j y-slots
//
// Unlike the other two families this basis is not free: the generators
// satisfy the relations enumerated by Relations.
type HalfIdempotentBasis[S scalar.Scalar[S]] struct {
	Basis[S]

	n     int
	pairs [][2]int       // slot -> (s,j)
	index map[[2]int]int // (s,j) -> slot
	rels  [][]int
}

// NewHalfIdempotent constructs the twisted Chern generating set for n
// variable pairs, together with its relation list.
func NewHalfIdempotent[S scalar.Scalar[S]](n int) *HalfIdempotentBasis[S] {
	b := &HalfIdempotentBasis[S]{n: n, index: make(map[[2]int]int)}
	for s := 0; s <= n; s++ {
		for j := 0; j <= n-s; j++ {
			if s == 0 && j == 0 {
				continue
			}
			b.index[[2]int{s, j}] = len(b.pairs)
			b.pairs = append(b.pairs, [2]int{s, j})
		}
	}

	gens := make([]*poly.Polynomial[S], len(b.pairs))
	dims := make([]int, len(b.pairs))
	names := make([]string, len(b.pairs))
	idem := idempotentSum[S](n)
	for slot, p := range b.pairs {
		s, j := p[0], p[1]
		switch {
		case s == 0:
			gens[slot] = elementarySymmetric[S](2*n, 0, n, j, poly.HalfIdempotent{})
			dims[slot] = j
			names[slot] = fmt.Sprintf("c_%d", j)
		case j == 0:
			gens[slot] = idem.Pow(s)
			dims[slot] = 0
			names[slot] = fmt.Sprintf("a_%d", s)
		default:
			gens[slot] = twistedChern[S](n, s, j)
			dims[slot] = s
			names[slot] = fmt.Sprintf("c_{%d,%d}", s, j)
		}
	}

	b.Basis = Basis[S]{
		nvars:  2 * n,
		rel:    poly.HalfIdempotent{},
		gens:   gens,
		coords: poly.Graded{Dims: dims, Names: names},
		find:   b.findExponent,
	}
	b.setRelations()
	return b
}

// N returns the number of variable pairs, half the variable count.
func (b *HalfIdempotentBasis[S]) N() int { return b.n }

// GeneratorAt returns the generator indexed by the pair (s,j).
func (b *HalfIdempotentBasis[S]) GeneratorAt(s, j int) *poly.Polynomial[S] {
	return b.gens[b.index[[2]int{s, j}]]
}

// Relations returns the left hand sides of the known generator relations as
// generator-coordinate exponent tuples: a_1^{n+1}, the products
// a_1^s*c_{s,i}, and the pairwise products c_{s,i}*c_{t,j} for s <= t <= s+i.
// The returned slices are shared and must not be modified.
func (b *HalfIdempotentBasis[S]) Relations() [][]int { return b.rels }

func (b *HalfIdempotentBasis[S]) setRelations() {
	n := b.n
	a1 := b.index[[2]int{1, 0}]

	comb := make([]int, len(b.pairs))
	comb[a1] = n + 1
	b.rels = append(b.rels, comb)

	for s := 1; s <= n; s++ {
		for i := 1; i <= n-s; i++ {
			comb = make([]int, len(b.pairs))
			comb[a1] = s
			comb[b.index[[2]int{s, i}]] = 1
			b.rels = append(b.rels, comb)
		}
	}

	for s := 1; s <= n; s++ {
		for t := s; t <= n; t++ {
			for i := max(t-s, 1); i <= n-s; i++ {
				for j := 1; j <= n-t; j++ {
					if s == t && j < i {
						continue
					}
					comb = make([]int, len(b.pairs))
					comb[b.index[[2]int{s, i}]]++
					comb[b.index[[2]int{t, j}]]++
					b.rels = append(b.rels, comb)
				}
			}
		}
	}
}

// findExponent peels the y-block pattern of a leading monomial into
// generator contributions: an initial y-run of length k is an a_k factor,
// the last y-run determines a twisted Chern factor whose leading monomial
// is divided out, and a pure x-monomial falls to the elementary symmetric
// staircase rule.
func (b *HalfIdempotentBasis[S]) findExponent(exp []int) ([]int, error) {
	out := make([]int, len(b.pairs))
	cur := append([]int(nil), exp...)
	if err := b.peel(cur, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *HalfIdempotentBasis[S]) peel(exp, out []int) error {
	n := b.n
	if exp[n] > 0 {
		k := 0
		for i := n; i < 2*n && exp[i] > 0; i++ {
			exp[i] = 0
			k++
		}
		out[b.index[[2]int{k, 0}]]++
		return b.peel(exp, out)
	}

	// The last contiguous run of set y-bits, scanning from the end.
	last, count, found := 2*n, 0, false
	for i := 2*n - 1; i >= n; i-- {
		if exp[i] == 0 && found {
			break
		}
		if exp[i] > 0 {
			last = i
			count++
			found = true
		}
	}

	if !found {
		stair, err := staircase(n)(exp[:n])
		if err != nil {
			return err
		}
		for i, d := range stair {
			out[b.index[[2]int{0, i + 1}]] += d
		}
		return nil
	}

	s, j := last-n, count
	out[b.index[[2]int{s, j}]]++
	// Divide out the leading monomial x_1...x_s y_{s+1}...y_{s+j} of c_{s,j}.
	for i := 0; i < s; i++ {
		if exp[i] == 0 {
			return fmt.Errorf("%w: monomial %v is not divisible by the leading term of c_{%d,%d}", ErrNotSymmetric, exp, s, j)
		}
		exp[i]--
	}
	for i := last; i < last+j; i++ {
		exp[i] = 0
	}
	return b.peel(exp, out)
}

// idempotentSum returns a_1 = y_1 + ... + y_n on 2n variables.
func idempotentSum[S scalar.Scalar[S]](n int) *poly.Polynomial[S] {
	p := poly.New[S](2*n, poly.HalfIdempotent{})
	one := scalar.One[S]()
	exp := make([]int, 2*n)
	for i := n; i < 2*n; i++ {
		exp[i] = 1
		p.Insert(exp, one)
		exp[i] = 0
	}
	return p
}

// twistedChern returns c_{s,j}: the sum over every s-subset of x-indices
// and every j-subset of the remaining indices, used as y-indices, of the
// monomial with those slots set to exponent 1.
func twistedChern[S scalar.Scalar[S]](n, s, j int) *poly.Polynomial[S] {
	p := poly.New[S](2*n, poly.HalfIdempotent{})
	one := scalar.One[S]()
	exp := make([]int, 2*n)
	xSets, err := combin.NewCombinations(n, s)
	if err != nil {
		panic(err)
	}
	for xSets.Next() {
		chosen := make(map[int]bool, s)
		for _, i := range xSets.Combination() {
			exp[i] = 1
			chosen[i] = true
		}
		var rest []int
		for i := 0; i < n; i++ {
			if !chosen[i] {
				rest = append(rest, i)
			}
		}
		ySets, err := combin.NewCombinations(n-s, j)
		if err != nil {
			panic(err)
		}
		for ySets.Next() {
			for _, i := range ySets.Combination() {
				exp[n+rest[i]] = 1
			}
			p.Insert(exp, one)
			for _, i := range ySets.Combination() {
				exp[n+rest[i]] = 0
			}
		}
		for _, i := range xSets.Combination() {
			exp[i] = 0
		}
	}
	return p
}
