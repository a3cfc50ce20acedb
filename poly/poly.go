package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
	"github.com/NickG-Math/Symmetric-Polynomials/utils"
)

// ErrNotDivisible is returned when dividing a monomial by one that does not
// divide it.
var ErrNotDivisible = fmt.Errorf("poly: monomial is not a factor")

// Kind selects the term storage of a Polynomial.
type Kind int

const (
	// Ordered keeps terms sorted by (degree, exponent): the highest term
	// is O(1) and iteration is canonical, at the cost of slower inserts.
	Ordered Kind = iota
	// Unordered keeps terms in a hash map: faster inserts, but the
	// highest term is a linear scan.
	Unordered
)

// Polynomial is a finite sum of monomials with distinct exponent vectors
// over a fixed relation and number of variables. The zero polynomial has no
// terms; no stored term ever has a zero coefficient.
type Polynomial[S scalar.Scalar[S]] struct {
	rel    Relation
	nvars  int
	kind   Kind
	hasher Hasher
	terms  container[S]
}

// New returns the zero polynomial on nvars variables under rel, with
// ordered term storage.
func New[S scalar.Scalar[S]](nvars int, rel Relation) *Polynomial[S] {
	return &Polynomial[S]{rel: rel, nvars: nvars, kind: Ordered, terms: &ordered[S]{}}
}

// NewUnordered returns the zero polynomial with hash-indexed term storage.
// A nil hasher selects DefaultHasher.
func NewUnordered[S scalar.Scalar[S]](nvars int, rel Relation, h Hasher) *Polynomial[S] {
	u := newUnordered[S](h)
	return &Polynomial[S]{rel: rel, nvars: nvars, kind: Unordered, hasher: u.hasher, terms: u}
}

// NewConstant returns the constant polynomial with the given coefficient.
func NewConstant[S scalar.Scalar[S]](nvars int, rel Relation, c S) *Polynomial[S] {
	p := New[S](nvars, rel)
	p.Insert(make([]int, nvars), c)
	return p
}

// newLike returns a zero polynomial with the same variables, relation and
// storage as p.
func (p *Polynomial[S]) newLike() *Polynomial[S] {
	if p.kind == Unordered {
		return NewUnordered[S](p.nvars, p.rel, p.hasher)
	}
	return New[S](p.nvars, p.rel)
}

// N returns the number of variables, fixed at construction.
func (p *Polynomial[S]) N() int { return p.nvars }

// Relation returns the relation policy of the variables.
func (p *Polynomial[S]) Relation() Relation { return p.rel }

// Kind returns the term storage kind.
func (p *Polynomial[S]) Kind() Kind { return p.kind }

// Len returns the number of monomials.
func (p *Polynomial[S]) Len() int { return p.terms.len() }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[S]) IsZero() bool { return p.terms.len() == 0 }

// Insert adds c*x^exp to p, normalizing the exponent under the relation and
// accumulating with any existing term; a cancelled term is erased. Inserting
// a zero coefficient is a no-op.
func (p *Polynomial[S]) Insert(exp []int, c S) {
	if c.IsZero() {
		return
	}
	if len(exp) != p.nvars {
		panic(fmt.Sprintf("poly: exponent of length %d on %d variables", len(exp), p.nvars))
	}
	e := append([]int(nil), exp...)
	p.rel.Apply(e)
	p.terms.insert(p.rel.Degree(e), e, c)
}

// Coeff returns the coefficient of x^exp, if the monomial is present.
func (p *Polynomial[S]) Coeff(exp []int) (S, bool) {
	e := append([]int(nil), exp...)
	p.rel.Apply(e)
	return p.terms.coeff(p.rel.Degree(e), e)
}

// HighestTerm returns the term maximal in the (degree, exponent) order.
// O(1) with ordered storage, O(Len) with unordered storage.
func (p *Polynomial[S]) HighestTerm() (Term[S], bool) {
	return p.terms.highest()
}

// Terms returns all terms sorted in increasing (degree, exponent) order.
func (p *Polynomial[S]) Terms() []Term[S] {
	ts := make([]Term[S], 0, p.terms.len())
	p.terms.scan(func(t Term[S]) bool {
		ts = append(ts, t)
		return true
	})
	if p.kind == Unordered {
		sort.Slice(ts, func(i, j int) bool {
			return compareKey(ts[i].Deg, ts[i].Exp, ts[j].Deg, ts[j].Exp) < 0
		})
	}
	return ts
}

// ForEach calls f on every term. With ordered storage the terms arrive in
// increasing (degree, exponent) order.
func (p *Polynomial[S]) ForEach(f func(t Term[S]) bool) {
	p.terms.scan(f)
}

// CopyNew returns a deep copy of p.
func (p *Polynomial[S]) CopyNew() *Polynomial[S] {
	q := *p
	q.terms = p.terms.clone()
	return &q
}

// Add adds b to p in place and returns p.
func (p *Polynomial[S]) Add(b *Polynomial[S]) *Polynomial[S] {
	b.terms.scan(func(t Term[S]) bool {
		p.terms.insert(t.Deg, t.Exp, t.Coeff)
		return true
	})
	return p
}

// Sub subtracts b from p in place and returns p.
func (p *Polynomial[S]) Sub(b *Polynomial[S]) *Polynomial[S] {
	b.terms.scan(func(t Term[S]) bool {
		p.terms.insert(t.Deg, t.Exp, t.Coeff.Neg())
		return true
	})
	return p
}

// MulScalar multiplies p by the scalar c in place and returns p.
func (p *Polynomial[S]) MulScalar(c S) *Polynomial[S] {
	if c.IsZero() {
		p.terms = p.newLike().terms
		return p
	}
	scaled := p.newLike()
	p.terms.scan(func(t Term[S]) bool {
		scaled.terms.insert(t.Deg, t.Exp, t.Coeff.Mul(c))
		return true
	})
	p.terms = scaled.terms
	return p
}

// Neg negates p in place and returns p.
func (p *Polynomial[S]) Neg() *Polynomial[S] {
	neg := p.newLike()
	p.terms.scan(func(t Term[S]) bool {
		neg.terms.insert(t.Deg, t.Exp, t.Coeff.Neg())
		return true
	})
	p.terms = neg.terms
	return p
}

// Mul returns the product p*b as a new polynomial with the storage of p.
// The product is the full Cauchy product over both term sets, quadratic in
// the term counts. Panics if the relation does not keep monomial products
// single-term.
func (p *Polynomial[S]) Mul(b *Polynomial[S]) *Polynomial[S] {
	if !p.rel.MonomialProduct() {
		panic("poly: relation does not preserve monomials under products")
	}
	prod := p.newLike()
	exp := make([]int, p.nvars)
	p.terms.scan(func(ta Term[S]) bool {
		b.terms.scan(func(tb Term[S]) bool {
			for i := range exp {
				exp[i] = ta.Exp[i] + tb.Exp[i]
			}
			p.rel.Apply(exp)
			prod.terms.insert(p.rel.Degree(exp), exp, ta.Coeff.Mul(tb.Coeff))
			return true
		})
		return true
	})
	return prod
}

// Pow returns p raised to the k-th power by repeated multiplication.
// Pow(0) is the constant polynomial 1. Panics if k is negative.
func (p *Polynomial[S]) Pow(k int) *Polynomial[S] {
	if k < 0 {
		panic("poly: negative power")
	}
	if k == 0 {
		one := p.newLike()
		one.Insert(make([]int, p.nvars), scalar.One[S]())
		return one
	}
	pwr := p.CopyNew()
	for i := 2; i <= k; i++ {
		pwr = pwr.Mul(p)
	}
	return pwr
}

// Equal reports whether p and b have exactly the same terms. The comparison
// is storage-independent, so an ordered and an unordered polynomial holding
// the same monomials compare equal.
func (p *Polynomial[S]) Equal(b *Polynomial[S]) bool {
	if p.terms.len() != b.terms.len() {
		return false
	}
	equal := true
	p.terms.scan(func(t Term[S]) bool {
		c, ok := b.terms.coeff(t.Deg, t.Exp)
		if !ok || !c.Equal(t.Coeff) {
			equal = false
		}
		return equal
	})
	return equal
}

// DivTerm divides the monomial a by the monomial b, subtracting exponents
// and dividing coefficients. Returns ErrNotDivisible if some exponent of b
// exceeds the matching exponent of a. The decomposition engine only calls
// this with actual factors; the check guards against programming errors in
// new generator families.
func DivTerm[S scalar.Scalar[S]](rel Relation, a, b Term[S]) (Term[S], error) {
	if b.Coeff.IsZero() {
		return Term[S]{}, fmt.Errorf("poly: division by the zero monomial")
	}
	exp := make([]int, len(a.Exp))
	for i := range exp {
		exp[i] = a.Exp[i] - b.Exp[i]
		if exp[i] < 0 {
			return Term[S]{}, ErrNotDivisible
		}
	}
	return Term[S]{Coeff: a.Coeff.Div(b.Coeff), Exp: exp, Deg: rel.Degree(exp)}, nil
}

// String renders p with the relation's variable names, terms in increasing
// (degree, exponent) order joined by " + ". The zero polynomial prints "0".
func (p *Polynomial[S]) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, 0, p.terms.len())
	for _, t := range p.Terms() {
		parts = append(parts, p.formatTerm(t))
	}
	return strings.Join(parts, " + ")
}

func (p *Polynomial[S]) formatTerm(t Term[S]) string {
	var sb strings.Builder
	one := scalar.One[S]()
	constant := utils.Sum(t.Exp) == 0
	if !t.Coeff.Equal(one) || constant {
		sb.WriteString(t.Coeff.String())
		if !constant {
			sb.WriteString("*")
		}
	}
	first := true
	for i, e := range t.Exp {
		if e == 0 {
			continue
		}
		if !first {
			sb.WriteString("*")
		}
		first = false
		sb.WriteString(p.rel.Name(i, p.nvars))
		if e > 1 {
			fmt.Fprintf(&sb, "^%d", e)
		}
	}
	return sb.String()
}
