// Package scalar defines the coefficient types of the polynomial packages:
// the generic Scalar constraint, an exact rational number with coprime
// reduction, and a machine integer wrapper.
package scalar

// Scalar is the constraint satisfied by all coefficient types. All methods
// are value-based and must not mutate the receiver.
//
// Div is only called on the decomposition path where the divisibility of the
// operands is guaranteed by the caller; implementations are not required to
// detect inexact quotients.
type Scalar[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S
	IsZero() bool
	Equal(S) bool

	// FromInt returns a new scalar holding the given integer value.
	// The receiver is only used for dispatch and may be the zero value.
	FromInt(int64) S

	// Encode appends the fixed-size binary encoding of the scalar to buf.
	Encode(buf []byte) []byte
	// Decode reads a scalar from the front of buf and returns it together
	// with the number of bytes consumed.
	Decode(buf []byte) (S, int, error)

	String() string
}

// One returns the multiplicative identity of the scalar type S.
func One[S Scalar[S]]() S {
	var zero S
	return zero.FromInt(1)
}
