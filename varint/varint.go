package varint

import "math/bits"

const (
	// MaxLen is the maximum number of bytes a prefix varint occupies.
	MaxLen = 9

	// MaxPrefixedBits is the largest bit-length representable without the escape form.
	MaxPrefixedBits = 7 * (MaxLen - 1)

	// escapeMarker starts the 9-byte form. It never starts a shorter encoding
	// because bytes of 1..8 byte forms always carry a zero terminator bit.
	escapeMarker = 0xFF
)

// RequiredLen returns the number of bytes needed to encode v.
//
// The result is the smallest N in 1..8 such that 7*N bits can hold v, or 9 when v needs
// more than 56 bits. Zero needs one byte.
//
// Parameters:
//   - v: Value to measure
//
// Returns:
//   - int: Encoded length in bytes (1..9)
func RequiredLen(v uint64) int {
	bitLen := bits.Len64(v | 1)
	if bitLen > MaxPrefixedBits {
		return MaxLen
	}

	return (bitLen + 6) / 7
}

// PrefixLen returns the total encoded length announced by the first byte of a prefix varint.
//
// The length is the count of leading one bits plus one, so 0xFF (eight leading ones)
// yields the 9-byte escape form.
func PrefixLen(b0 byte) int {
	return bits.LeadingZeros8(^b0) + 1
}

// EncodedSize returns the total number of bytes needed to encode all values.
func EncodedSize(values []uint64) int {
	size := 0
	for _, v := range values {
		size += RequiredLen(v)
	}

	return size
}

// marker returns the unary length marker for an n-byte form (n in 1..8).
// The shift by 8 for n=1 yields zero.
func marker(n int) byte {
	return byte(0xFF) << uint(9-n) //nolint:gosec
}
