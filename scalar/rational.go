package scalar

import (
	"encoding/binary"
	"fmt"

	"github.com/NickG-Math/Symmetric-Polynomials/utils"
)

// Rational is an exact rational number p/q on machine integers.
// The numerator and denominator are kept coprime with a positive
// denominator, so the zero value is not valid; use NewRational or FromInt.
type Rational struct {
	P, Q int64
}

// NewRational returns the reduced fraction p/q.
// Returns an error if q is zero.
func NewRational(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, fmt.Errorf("scalar: zero denominator")
	}
	return reduce(p, q), nil
}

func reduce(p, q int64) Rational {
	if q < 0 {
		p, q = -p, -q
	}
	if p == 0 {
		return Rational{0, 1}
	}
	g := utils.GCD(p, q)
	return Rational{p / g, q / g}
}

// Add returns r+b.
func (r Rational) Add(b Rational) Rational {
	return reduce(r.P*b.Q+b.P*r.Q, r.Q*b.Q)
}

// Sub returns r-b.
func (r Rational) Sub(b Rational) Rational {
	return reduce(r.P*b.Q-b.P*r.Q, r.Q*b.Q)
}

// Mul returns r*b.
func (r Rational) Mul(b Rational) Rational {
	return reduce(r.P*b.P, r.Q*b.Q)
}

// Div returns r/b. Panics if b is zero.
func (r Rational) Div(b Rational) Rational {
	if b.P == 0 {
		panic("scalar: division by zero")
	}
	return reduce(r.P*b.Q, r.Q*b.P)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{-r.P, r.Q}
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool {
	return r.P == 0
}

// Equal compares r and b by cross-multiplication, so fractions that were not
// produced by this package still compare by value.
func (r Rational) Equal(b Rational) bool {
	return r.P*b.Q == b.P*r.Q
}

// FromInt returns the rational v/1. The receiver is ignored.
func (Rational) FromInt(v int64) Rational {
	return Rational{v, 1}
}

// Encode appends the 16-byte encoding of r to buf.
func (r Rational) Encode(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint64(buf, uint64(r.P))
	return binary.BigEndian.AppendUint64(buf, uint64(r.Q))
}

// Decode reads a Rational from the front of buf.
func (Rational) Decode(buf []byte) (Rational, int, error) {
	if len(buf) < 16 {
		return Rational{}, 0, fmt.Errorf("scalar: short buffer for Rational")
	}
	p := int64(binary.BigEndian.Uint64(buf[:8]))
	q := int64(binary.BigEndian.Uint64(buf[8:16]))
	if q == 0 {
		return Rational{}, 0, fmt.Errorf("scalar: decoded zero denominator")
	}
	return reduce(p, q), 16, nil
}

func (r Rational) String() string {
	if r.Q == 1 {
		return fmt.Sprintf("%d", r.P)
	}
	return fmt.Sprintf("%d/%d", r.P, r.Q)
}
