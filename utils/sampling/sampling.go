// Package sampling implements sources of random bytes and integers, both
// non-deterministic and deterministic (keyed), used to generate random
// polynomials in tests and experiments.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadUint64 reads eight bytes from r and returns them as a uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64Range reads bytes from r and returns an int64 uniformly
// distributed in [-bound, bound]. The bound must be positive.
func ReadInt64Range(r io.Reader, bound int64) (int64, error) {
	if bound <= 0 {
		panic("sampling: non-positive bound")
	}
	u, err := ReadUint64(r)
	if err != nil {
		return 0, err
	}
	span := uint64(2*bound + 1)
	return int64(u%span) - bound, nil
}
