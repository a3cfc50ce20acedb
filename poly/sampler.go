package poly

import (
	"io"

	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
	"github.com/NickG-Math/Symmetric-Polynomials/utils/sampling"
)

// UniformSampler draws random permutation-invariant polynomials: a random
// integer coefficient in [-coeffBound, coeffBound] for the orbit of every
// monomial of degree at most maxDegree. Reading from the same keyed PRNG
// reproduces the same polynomial.
type UniformSampler[S scalar.Scalar[S]] struct {
	prng       io.Reader
	rel        Relation
	nvars      int
	maxDegree  int
	coeffBound int64
	orbits     [][]int
}

// NewUniformSampler creates a UniformSampler over nvars variables under rel.
func NewUniformSampler[S scalar.Scalar[S]](prng io.Reader, rel Relation, nvars, maxDegree int, coeffBound int64) *UniformSampler[S] {
	var orbits [][]int
	for d := 0; d <= maxDegree; d++ {
		orbits = append(orbits, MonomialBasis(nvars, d, rel)...)
	}
	return &UniformSampler[S]{
		prng:       prng,
		rel:        rel,
		nvars:      nvars,
		maxDegree:  maxDegree,
		coeffBound: coeffBound,
		orbits:     orbits,
	}
}

// Read samples a fresh polynomial into pol, replacing its terms.
func (s *UniformSampler[S]) Read(pol *Polynomial[S]) error {
	pol.terms = pol.newLike().terms
	var zero S
	for _, exp := range s.orbits {
		v, err := sampling.ReadInt64Range(s.prng, s.coeffBound)
		if err != nil {
			return err
		}
		pol.InsertOrbit(exp, zero.FromInt(v))
	}
	return nil
}

// ReadNew samples a fresh polynomial with ordered storage.
func (s *UniformSampler[S]) ReadNew() (*Polynomial[S], error) {
	pol := New[S](s.nvars, s.rel)
	if err := s.Read(pol); err != nil {
		return nil, err
	}
	return pol, nil
}
