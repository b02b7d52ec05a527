package hashmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// String hashes a string key with xxhash64.
func String(s string) uint64 { return xxhash.Sum64String(s) }

// Bytes hashes a byte-slice-like key with xxhash64.
func Bytes[T ~string | ~[]byte](b T) uint64 { return xxhash.Sum64([]byte(b)) }

// Integer hashes any integer key by running xxhash64 over its
// little-endian 64-bit encoding.
func Integer[T constraints.Integer](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))

	return xxhash.Sum64(buf[:])
}
