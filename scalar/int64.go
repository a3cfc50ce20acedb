package scalar

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Int64 is a machine integer coefficient. Division truncates, so it should
// only be used where quotients are known to be exact, e.g. when decomposing
// over generators whose leading coefficients are 1.
type Int64 int64

// Add returns a+b.
func (a Int64) Add(b Int64) Int64 { return a + b }

// Sub returns a-b.
func (a Int64) Sub(b Int64) Int64 { return a - b }

// Mul returns a*b.
func (a Int64) Mul(b Int64) Int64 { return a * b }

// Div returns a/b. Panics if b is zero.
func (a Int64) Div(b Int64) Int64 {
	if b == 0 {
		panic("scalar: division by zero")
	}
	return a / b
}

// Neg returns -a.
func (a Int64) Neg() Int64 { return -a }

// IsZero reports whether a is zero.
func (a Int64) IsZero() bool { return a == 0 }

// Equal reports whether a and b are equal.
func (a Int64) Equal(b Int64) bool { return a == b }

// FromInt returns v as an Int64. The receiver is ignored.
func (Int64) FromInt(v int64) Int64 { return Int64(v) }

// Encode appends the 8-byte encoding of a to buf.
func (a Int64) Encode(buf []byte) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(a))
}

// Decode reads an Int64 from the front of buf.
func (Int64) Decode(buf []byte) (Int64, int, error) {
	if len(buf) < 8 {
		return 0, 0, fmt.Errorf("scalar: short buffer for Int64")
	}
	return Int64(binary.BigEndian.Uint64(buf[:8])), 8, nil
}

func (a Int64) String() string {
	return strconv.FormatInt(int64(a), 10)
}
