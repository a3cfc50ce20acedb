package poly

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
	"github.com/NickG-Math/Symmetric-Polynomials/utils/sampling"
)

func rat(p, q int64) scalar.Rational {
	r, err := scalar.NewRational(p, q)
	if err != nil {
		panic(err)
	}
	return r
}

func TestInsertAccumulate(t *testing.T) {
	p := New[scalar.Rational](2, NoRelations{})
	p.Insert([]int{1, 0}, rat(1, 2))
	p.Insert([]int{1, 0}, rat(1, 2))
	p.Insert([]int{0, 1}, rat(3, 1))

	require.Equal(t, 2, p.Len())
	c, ok := p.Coeff([]int{1, 0})
	require.True(t, ok)
	require.True(t, c.Equal(rat(1, 1)))

	p.Insert([]int{0, 1}, rat(-3, 1))
	require.Equal(t, 1, p.Len())
	_, ok = p.Coeff([]int{0, 1})
	require.False(t, ok)

	p.Insert([]int{5, 5}, rat(0, 1))
	require.Equal(t, 1, p.Len())
}

func TestHighestTermAgreement(t *testing.T) {
	exps := [][]int{{0, 3}, {2, 0}, {1, 1}, {0, 0}, {3, 0}, {2, 1}}
	ord := New[scalar.Int64](2, NoRelations{})
	uno := NewUnordered[scalar.Int64](2, NoRelations{}, nil)
	for i, e := range exps {
		c := scalar.Int64(i + 1)
		ord.Insert(e, c)
		uno.Insert(e, c)
	}
	ht, ok := ord.HighestTerm()
	require.True(t, ok)
	require.Equal(t, []int{3, 0}, ht.Exp)
	require.Equal(t, 3, ht.Deg)

	hu, ok := uno.HighestTerm()
	require.True(t, ok)
	require.Equal(t, ht.Exp, hu.Exp)
	require.True(t, ht.Coeff.Equal(hu.Coeff))

	require.True(t, ord.Equal(uno))
	require.True(t, uno.Equal(ord))
}

func TestHighestTermEmpty(t *testing.T) {
	p := New[scalar.Rational](3, NoRelations{})
	_, ok := p.HighestTerm()
	require.False(t, ok)
	require.True(t, p.IsZero())
	require.Equal(t, "0", p.String())
}

func TestMulPow(t *testing.T) {
	// (x_1 + x_2)^2 = x_1^2 + 2*x_1*x_2 + x_2^2
	p := New[scalar.Rational](2, NoRelations{})
	p.Insert([]int{1, 0}, rat(1, 1))
	p.Insert([]int{0, 1}, rat(1, 1))

	sq := p.Pow(2)
	require.Equal(t, 3, sq.Len())
	c, ok := sq.Coeff([]int{1, 1})
	require.True(t, ok)
	require.True(t, c.Equal(rat(2, 1)))
	c, ok = sq.Coeff([]int{2, 0})
	require.True(t, ok)
	require.True(t, c.Equal(rat(1, 1)))

	require.True(t, sq.Equal(p.Mul(p)))
	require.True(t, p.Pow(0).Equal(NewConstant[scalar.Rational](2, NoRelations{}, rat(1, 1))))
}

func TestHalfIdempotentClamp(t *testing.T) {
	// y_1 * y_1 = y_1 under y^2 = y.
	p := New[scalar.Rational](2, HalfIdempotent{})
	p.Insert([]int{0, 1}, rat(1, 1))
	sq := p.Mul(p)
	require.True(t, sq.Equal(p))

	// Degree ignores the y block.
	p.Insert([]int{3, 1}, rat(1, 1))
	ht, ok := p.HighestTerm()
	require.True(t, ok)
	require.Equal(t, 3, ht.Deg)
}

func TestAddSubNeg(t *testing.T) {
	p := New[scalar.Rational](2, NoRelations{})
	p.Insert([]int{1, 0}, rat(2, 1))
	q := p.CopyNew()
	q.Insert([]int{0, 1}, rat(5, 1))

	q.Sub(p)
	require.Equal(t, 1, q.Len())
	c, ok := q.Coeff([]int{0, 1})
	require.True(t, ok)
	require.True(t, c.Equal(rat(5, 1)))

	q.Neg().Add(q.CopyNew().Neg())
	require.True(t, q.IsZero())

	p.MulScalar(rat(3, 2))
	c, ok = p.Coeff([]int{1, 0})
	require.True(t, ok)
	require.True(t, c.Equal(rat(3, 1)))
	p.MulScalar(rat(0, 1))
	require.True(t, p.IsZero())
}

func TestDivTerm(t *testing.T) {
	rel := NoRelations{}
	a := Term[scalar.Rational]{Coeff: rat(6, 1), Exp: []int{3, 1}, Deg: 4}
	b := Term[scalar.Rational]{Coeff: rat(2, 1), Exp: []int{1, 1}, Deg: 2}
	q, err := DivTerm(rel, a, b)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, q.Exp)
	require.True(t, q.Coeff.Equal(rat(3, 1)))

	_, err = DivTerm(rel, b, a)
	require.ErrorIs(t, err, ErrNotDivisible)
}

func TestString(t *testing.T) {
	p := New[scalar.Rational](2, NoRelations{})
	p.Insert([]int{0, 0}, rat(1, 2))
	p.Insert([]int{2, 1}, rat(1, 1))
	p.Insert([]int{1, 0}, rat(-3, 1))
	require.Equal(t, "1/2 + -3*x_1 + x_1^2*x_2", p.String())

	h := New[scalar.Rational](4, HalfIdempotent{})
	h.Insert([]int{1, 0, 0, 1}, rat(1, 1))
	require.Equal(t, "x_1*y_2", h.String())
}

func TestSerializationRoundTrip(t *testing.T) {
	p := New[scalar.Rational](3, NoRelations{})
	p.Insert([]int{1, 2, 0}, rat(-7, 3))
	p.Insert([]int{0, 0, 5}, rat(4, 1))
	p.Insert([]int{1, 1, 1}, rat(1, 2))

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, p.BinarySize(), len(data))

	q := NewUnordered[scalar.Rational](3, NoRelations{}, nil)
	require.NoError(t, q.UnmarshalBinary(data))
	require.True(t, p.Equal(q))

	buf := new(bytes.Buffer)
	_, err = p.WriteTo(buf)
	require.NoError(t, err)
	r := New[scalar.Rational](3, NoRelations{})
	_, err = r.ReadFrom(buf)
	require.NoError(t, err)
	require.True(t, p.Equal(r))

	bad := New[scalar.Rational](2, NoRelations{})
	require.Error(t, bad.UnmarshalBinary(data))
}

func TestInsertOrbit(t *testing.T) {
	// Orbit of x_1^2 under S_3 is x_1^2 + x_2^2 + x_3^2.
	p := New[scalar.Rational](3, NoRelations{})
	p.InsertOrbit([]int{2, 0, 0}, rat(1, 1))
	require.Equal(t, 3, p.Len())
	for _, e := range [][]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}} {
		c, ok := p.Coeff(e)
		require.True(t, ok)
		require.True(t, c.Equal(rat(1, 1)))
	}

	// The orbit of x_1*x_2 has 3 distinct monomials, not 6.
	q := Symmetrize(3, NoRelations{}, []int{1, 1, 0}, rat(1, 1))
	require.Equal(t, 3, q.Len())
}

func TestHashStorageIndependent(t *testing.T) {
	ord := New[scalar.Rational](2, NoRelations{})
	uno := NewUnordered[scalar.Rational](2, NoRelations{}, nil)
	for _, e := range [][]int{{2, 0}, {0, 1}, {1, 1}} {
		ord.Insert(e, rat(1, 3))
		uno.Insert(e, rat(1, 3))
	}
	ho, err := ord.Hash()
	require.NoError(t, err)
	hu, err := uno.Hash()
	require.NoError(t, err)
	require.Equal(t, ho, hu)

	uno.Insert([]int{5, 5}, rat(1, 1))
	hu, err = uno.Hash()
	require.NoError(t, err)
	require.NotEqual(t, ho, hu)
}

func TestMonomialBasis(t *testing.T) {
	// Degree-2 monomials in 2 variables: x^2, xy, y^2.
	basis := MonomialBasis(2, 2, NoRelations{})
	require.Len(t, basis, 3)

	// Half-idempotent on one pair: degree-1 monomials are x, x*y.
	basis = MonomialBasis(2, 1, HalfIdempotent{})
	require.ElementsMatch(t, [][]int{{1, 0}, {1, 1}}, basis)
}

func TestSamplerDeterminism(t *testing.T) {
	key := []byte{0xde, 0xad, 0xbe, 0xef}
	prngA, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	prngB, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)

	a, err := NewUniformSampler[scalar.Rational](prngA, HalfIdempotent{}, 4, 3, 10).ReadNew()
	require.NoError(t, err)
	b, err := NewUniformSampler[scalar.Rational](prngB, HalfIdempotent{}, 4, 3, 10).ReadNew()
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	// A sampled polynomial is invariant under the full permutation action.
	perm := []int{1, 0}
	sym := New[scalar.Rational](4, HalfIdempotent{})
	a.ForEach(func(tm Term[scalar.Rational]) bool {
		sym.Insert(HalfIdempotent{}.Permute(tm.Exp, perm), tm.Coeff)
		return true
	})
	require.True(t, a.Equal(sym))
}

func TestHasherAgreement(t *testing.T) {
	exp := []int{3, 0, 1, 7}
	crc := NewCRC32Hasher()
	var b3 Blake3Hasher
	require.Equal(t, crc.Sum64(exp), crc.Sum64(exp))
	require.Equal(t, b3.Sum64(exp), b3.Sum64(exp))
	require.NotEqual(t, crc.Sum64(exp), crc.Sum64([]int{3, 0, 1, 8}))

	p := NewUnordered[scalar.Rational](4, NoRelations{}, b3)
	q := NewUnordered[scalar.Rational](4, NoRelations{}, crc)
	p.Insert(exp, rat(2, 1))
	q.Insert(exp, rat(2, 1))
	require.True(t, p.Equal(q))
}
