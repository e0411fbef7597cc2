package varint

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// Decode reads one prefix varint from r.
//
// When r reports at least MaxLen remaining bytes, the value is reconstructed from a single
// 9-byte window and r is advanced once. Otherwise the length is taken from the first byte
// and only that many bytes are requested.
//
// On failure r is not advanced.
//
// Parameters:
//   - r: Source reader (e.g. *buffer.Cursor)
//
// Returns:
//   - uint64: Decoded value
//   - error: ErrTruncated if r ends before the encoded length, or the reader's own error
func Decode(r Reader) (uint64, error) {
	v, n, err := peekValue(r)
	if err != nil {
		return 0, err
	}

	if _, err := r.Next(n); err != nil {
		return 0, readError(r, err, n)
	}

	return v, nil
}

// Uvarint decodes a prefix varint from the start of src.
//
// It returns the value and the number of bytes consumed. Unlike binary.Uvarint, a short
// buffer is reported as an error instead of a zero count.
//
// Parameters:
//   - src: Encoded bytes; trailing bytes after the first value are ignored
//
// Returns:
//   - uint64: Decoded value
//   - int: Number of bytes consumed (1..9), zero on error
//   - error: ErrTruncated if src is shorter than the encoded length
func Uvarint(src []byte) (uint64, int, error) {
	if len(src) >= MaxLen {
		v, n := decodeWindow(src)
		return v, n, nil
	}

	if len(src) == 0 {
		return 0, 0, truncatedError(1, 0)
	}

	n := PrefixLen(src[0])
	if len(src) < n {
		return 0, 0, truncatedError(n, len(src))
	}

	return decodeExact(src[:n]), n, nil
}

// ReadUvarint reads a prefix varint from a byte stream.
//
// It returns io.EOF only if no byte was read. If the stream ends after the first byte,
// the error wraps both ErrTruncated and io.ErrUnexpectedEOF. A plain byte stream cannot
// be rewound, so bytes read before a failure are lost; use buffer.StreamReader with
// Decode when atomic failure matters.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	n := PrefixLen(b0)
	var buf [MaxLen]byte
	buf[0] = b0
	for i := 1; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF { //nolint:errorlint
				err = io.ErrUnexpectedEOF
			}

			return 0, fmt.Errorf("%w: need %d bytes, have %d: %w", ErrTruncated, n, i, err)
		}
		buf[i] = b
	}

	return decodeExact(buf[:n]), nil
}

// peekValue decodes the next value without consuming it and returns its encoded length.
func peekValue(r Reader) (uint64, int, error) {
	if r.Len() >= MaxLen {
		window, err := r.Peek(MaxLen)
		if err == nil {
			v, n := decodeWindow(window)
			return v, n, nil
		}
	}

	head, err := r.Peek(1)
	if err != nil {
		return 0, 0, readError(r, err, 1)
	}

	n := PrefixLen(head[0])
	encoded, err := r.Peek(n)
	if err != nil {
		return 0, 0, readError(r, err, n)
	}

	return decodeExact(encoded[:n]), n, nil
}

// decodeWindow decodes the value at the start of w, which must hold at least MaxLen bytes.
//
// Bytes beyond the encoded length are loaded but masked out.
func decodeWindow(w []byte) (uint64, int) {
	_ = w[MaxLen-1] // bounds check hint
	b0 := w[0]
	rest := binary.LittleEndian.Uint64(w[1:MaxLen])
	if b0 == escapeMarker {
		return rest, MaxLen
	}

	n := bits.LeadingZeros8(^b0) + 1
	tail := uint(8 * (n - 1)) //nolint:gosec
	top := uint64(b0 & (0xFF >> n))
	low := rest & (uint64(1)<<tail - 1)

	return top<<tail | low, n
}

// decodeExact decodes a complete encoding whose length equals len(b).
func decodeExact(b []byte) uint64 {
	n := len(b)
	if b[0] == escapeMarker {
		return binary.LittleEndian.Uint64(b[1:MaxLen])
	}

	var low uint64
	for i := n - 1; i >= 1; i-- {
		low = low<<8 | uint64(b[i])
	}
	top := uint64(b[0] & (0xFF >> n))

	return top<<(8*(n-1)) | low
}
