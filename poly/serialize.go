package poly

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/NickG-Math/Symmetric-Polynomials/scalar"
)

// BinarySize returns the size in bytes of the serialization of p.
func (p *Polynomial[S]) BinarySize() int {
	var zero S
	scalarSize := len(zero.Encode(nil))
	return 16 + p.terms.len()*(scalarSize+8*p.nvars)
}

// MarshalBinary encodes p as a 16-byte header (variable count and term
// count, big endian) followed by the terms in increasing (degree, exponent)
// order, each a coefficient followed by the exponent vector.
func (p *Polynomial[S]) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, p.BinarySize())
	data = binary.BigEndian.AppendUint64(data, uint64(p.nvars))
	data = binary.BigEndian.AppendUint64(data, uint64(p.terms.len()))
	for _, t := range p.Terms() {
		data = t.Coeff.Encode(data)
		for _, e := range t.Exp {
			data = binary.BigEndian.AppendUint64(data, uint64(e))
		}
	}
	return
}

// UnmarshalBinary decodes data produced by MarshalBinary into p, which must
// have been constructed with the same number of variables. The relation and
// storage kind of p are kept.
func (p *Polynomial[S]) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 16 {
		return fmt.Errorf("poly: truncated serialization: %d bytes", len(data))
	}
	nvars := int(binary.BigEndian.Uint64(data))
	if nvars != p.nvars {
		return fmt.Errorf("poly: serialized on %d variables, receiver has %d", nvars, p.nvars)
	}
	nterms := int(binary.BigEndian.Uint64(data[8:]))
	data = data[16:]
	p.terms = p.newLike().terms
	exp := make([]int, p.nvars)
	for i := 0; i < nterms; i++ {
		var c S
		var n int
		if c, n, err = c.Decode(data); err != nil {
			return fmt.Errorf("poly: term %d: %w", i, err)
		}
		data = data[n:]
		if len(data) < 8*p.nvars {
			return fmt.Errorf("poly: truncated exponent in term %d", i)
		}
		for j := range exp {
			exp[j] = int(binary.BigEndian.Uint64(data[8*j:]))
		}
		data = data[8*p.nvars:]
		p.Insert(exp, c)
	}
	return
}

// WriteTo writes the serialization of p to w.
func (p *Polynomial[S]) WriteTo(w io.Writer) (n int64, err error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return
	}
	written, err := w.Write(data)
	return int64(written), err
}

// ReadFrom reads a serialization produced by WriteTo from r into p.
func (p *Polynomial[S]) ReadFrom(r io.Reader) (n int64, err error) {
	header := make([]byte, 16)
	read, err := io.ReadFull(r, header)
	n = int64(read)
	if err != nil {
		return
	}
	if nvars := int(binary.BigEndian.Uint64(header)); nvars != p.nvars {
		return n, fmt.Errorf("poly: serialized on %d variables, receiver has %d", nvars, p.nvars)
	}
	nterms := int(binary.BigEndian.Uint64(header[8:]))
	var zero S
	body := make([]byte, nterms*(len(zero.Encode(nil))+8*p.nvars))
	read, err = io.ReadFull(r, body)
	n += int64(read)
	if err != nil {
		return
	}
	return n, p.UnmarshalBinary(append(header, body...))
}

// Hash returns a 64-bit fingerprint of the canonical serialization of p,
// computed with blake3. The fingerprint is independent of the term storage
// kind.
func (p *Polynomial[S]) Hash() (uint64, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	sum := blake3.Sum256(data)
	return binary.LittleEndian.Uint64(sum[:8]), nil
}

var _ io.WriterTo = (*Polynomial[scalar.Rational])(nil)
var _ io.ReaderFrom = (*Polynomial[scalar.Rational])(nil)
