package varint

import (
	"encoding/binary"
	"io"
	"slices"
)

// Encode appends the prefix varint encoding of v to w.
//
// Exactly RequiredLen(v) bytes are written. Growing the destination is the writer's
// responsibility, so Encode has no error result.
//
// Parameters:
//   - w: Destination writer (e.g. *buffer.ByteBuffer)
//   - v: Value to encode
func Encode(w Writer, v uint64) {
	var tmp [MaxLen]byte
	n := Put(tmp[:], v)
	w.MustWrite(tmp[:n])
}

// Put encodes v into dst and returns the number of bytes written.
//
// Panics if dst is shorter than RequiredLen(v). A MaxLen-byte buffer is always enough.
//
// Parameters:
//   - dst: Destination buffer
//   - v: Value to encode
//
// Returns:
//   - int: Number of bytes written (1..9)
func Put(dst []byte, v uint64) int {
	n := RequiredLen(v)
	if n == MaxLen {
		_ = dst[MaxLen-1] // bounds check hint
		dst[0] = escapeMarker
		binary.LittleEndian.PutUint64(dst[1:], v)

		return MaxLen
	}

	_ = dst[n-1] // bounds check hint
	tail := n - 1
	dst[0] = marker(n) | byte(v>>(8*tail))
	for i := 1; i < n; i++ {
		dst[i] = byte(v >> (8 * (i - 1)))
	}

	return n
}

// AppendUvarint appends the prefix varint encoding of v to dst and returns the extended slice.
//
// This is the growable-slice counterpart of Encode, mirroring binary.AppendUvarint.
func AppendUvarint(dst []byte, v uint64) []byte {
	n := RequiredLen(v)
	if n == MaxLen {
		dst = append(dst, escapeMarker)
		return binary.LittleEndian.AppendUint64(dst, v)
	}

	tail := n - 1
	dst = append(dst, marker(n)|byte(v>>(8*tail)))
	for i := range tail {
		dst = append(dst, byte(v>>(8*i)))
	}

	return dst
}

// AppendUvarints appends the encodings of all values to dst.
//
// The destination grows once for the whole batch.
func AppendUvarints(dst []byte, values []uint64) []byte {
	if len(values) == 0 {
		return dst
	}

	dst = slices.Grow(dst, EncodedSize(values))
	for _, v := range values {
		dst = AppendUvarint(dst, v)
	}

	return dst
}

// WriteUvarint writes the prefix varint encoding of v to an io.Writer.
//
// Unlike Encode, the destination may fail; the error from w is returned unchanged.
//
// Returns:
//   - int: Number of bytes written
//   - error: Error from the underlying writer
func WriteUvarint(w io.Writer, v uint64) (int, error) {
	var tmp [MaxLen]byte
	n := Put(tmp[:], v)

	return w.Write(tmp[:n])
}
