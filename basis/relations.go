package basis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/NickG-Math/Symmetric-Polynomials/poly"
	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
)

// DecomposeRelation expands the generator-coordinate monomial rel in the
// original variables and decomposes it back, giving the right hand side of
// the relation: the expression of rel's product in terms of the generators.
func (b *HalfIdempotentBasis[S]) DecomposeRelation(rel []int) (*poly.Polynomial[S], error) {
	return b.Decompose(b.Product(rel))
}

// VerifyRelation checks one relation by round-tripping: the expanded
// relation polynomial is decomposed and re-expanded, and must structurally
// equal the original expansion.
func (b *HalfIdempotentBasis[S]) VerifyRelation(rel []int) (bool, error) {
	prod := b.Product(rel)
	dec, err := b.Decompose(prod)
	if err != nil {
		return false, err
	}
	back, err := b.Expand(dec)
	if err != nil {
		return false, err
	}
	return back.Equal(prod), nil
}

// VerifyRelations round-trips every known relation concurrently and
// returns the combined failures, or nil when all relations hold.
func (b *HalfIdempotentBasis[S]) VerifyRelations() error {
	errs := make([]error, len(b.rels))
	var wg sync.WaitGroup
	for i, rel := range b.rels {
		wg.Add(1)
		go func(i int, rel []int) {
			defer wg.Done()
			ok, err := b.VerifyRelation(rel)
			if err == nil && !ok {
				err = fmt.Errorf("basis: relation %v failed verification", rel)
			}
			errs[i] = err
		}(i, rel)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// PrintRelations writes every known relation to w as
// "LHS = RHS" with both sides in generator coordinates, optionally
// verifying each by round-trip. A failed verification is returned as an
// error after the relation is printed.
func (b *HalfIdempotentBasis[S]) PrintRelations(w io.Writer, verify bool) error {
	for _, rel := range b.rels {
		line, err := b.formatRelation(rel, verify)
		if _, werr := io.WriteString(w, line); werr != nil {
			return werr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintRelationsParallel is PrintRelations with the relations processed
// concurrently. Each goroutine formats into its own buffer; the buffers are
// flushed to w in relation order once all are done.
func (b *HalfIdempotentBasis[S]) PrintRelationsParallel(w io.Writer, verify bool) error {
	lines := make([]string, len(b.rels))
	errs := make([]error, len(b.rels))
	var wg sync.WaitGroup
	for i, rel := range b.rels {
		wg.Add(1)
		go func(i int, rel []int) {
			defer wg.Done()
			lines[i], errs[i] = b.formatRelation(rel, verify)
		}(i, rel)
	}
	wg.Wait()

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *HalfIdempotentBasis[S]) formatRelation(rel []int, verify bool) (string, error) {
	lhs := b.ZeroCoords()
	lhs.Insert(rel, scalar.One[S]())

	rhs, err := b.DecomposeRelation(rel)
	if err != nil {
		return fmt.Sprintf("%s = ?\n", lhs), err
	}
	line := fmt.Sprintf("%s = %s\n", lhs, rhs)
	if verify {
		ok, err := b.VerifyRelation(rel)
		if err != nil {
			return line, err
		}
		if !ok {
			return line, fmt.Errorf("basis: relation %s failed verification", lhs)
		}
		line += "verified\n"
	}
	return line, nil
}
