package poly

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/cpuid/v2"
	"github.com/zeebo/blake3"
)

// Hasher maps exponent vectors to bucket indices for the hash-indexed
// container. Implementations must be deterministic; they are injected at
// construction rather than selected globally.
type Hasher interface {
	Sum64(exp []int) uint64
}

// CRC32Hasher hashes exponents with the Castagnoli CRC32, which is hardware
// accelerated on CPUs with SSE4.2.
type CRC32Hasher struct {
	table *crc32.Table
}

// NewCRC32Hasher returns a new CRC32Hasher.
func NewCRC32Hasher() *CRC32Hasher {
	return &CRC32Hasher{table: crc32.MakeTable(crc32.Castagnoli)}
}

// Sum64 returns the CRC32C of the exponent bytes.
func (h *CRC32Hasher) Sum64(exp []int) uint64 {
	return uint64(crc32.Checksum(appendExponent(nil, exp), h.table))
}

// Blake3Hasher hashes exponents with BLAKE3. Portable fallback for CPUs
// without hardware CRC32.
type Blake3Hasher struct{}

// Sum64 returns the first eight bytes of the BLAKE3 digest of the exponent.
func (Blake3Hasher) Sum64(exp []int) uint64 {
	sum := blake3.Sum256(appendExponent(nil, exp))
	return binary.LittleEndian.Uint64(sum[:8])
}

// DefaultHasher returns the CRC32C hasher when the CPU accelerates it and
// the BLAKE3 hasher otherwise.
func DefaultHasher() Hasher {
	if cpuid.CPU.Supports(cpuid.SSE42) {
		return NewCRC32Hasher()
	}
	return Blake3Hasher{}
}

func appendExponent(buf []byte, exp []int) []byte {
	for _, e := range exp {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e))
	}
	return buf
}
