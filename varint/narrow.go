package varint

import "math/bits"

// Unsigned is the set of result types supported by narrowing decodes.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DecodeAs reads one prefix varint from r and converts it to T.
//
// The wire value is always decoded as uint64 first; if it exceeds the maximum of T the
// call fails with ErrOverflow and r is not advanced, so callers can retry with a wider
// type. Values are never wrapped or masked.
//
// Parameters:
//   - r: Source reader
//
// Returns:
//   - T: Decoded value
//   - error: ErrTruncated, ErrOverflow, or the reader's own error
func DecodeAs[T Unsigned](r Reader) (T, error) {
	v, n, err := peekValue(r)
	if err != nil {
		return 0, err
	}

	out, err := Narrow[T](v)
	if err != nil {
		return 0, err
	}

	if _, err := r.Next(n); err != nil {
		return 0, readError(r, err, n)
	}

	return out, nil
}

// UvarintAs decodes a prefix varint from the start of src and converts it to T.
//
// It returns the number of bytes the encoding occupies; on error the count is zero.
func UvarintAs[T Unsigned](src []byte) (T, int, error) {
	v, n, err := Uvarint(src)
	if err != nil {
		return 0, 0, err
	}

	out, err := Narrow[T](v)
	if err != nil {
		return 0, 0, err
	}

	return out, n, nil
}

// DecodeUint8 reads one prefix varint from r into a uint8.
func DecodeUint8(r Reader) (uint8, error) {
	return DecodeAs[uint8](r)
}

// DecodeUint16 reads one prefix varint from r into a uint16.
func DecodeUint16(r Reader) (uint16, error) {
	return DecodeAs[uint16](r)
}

// DecodeUint32 reads one prefix varint from r into a uint32.
func DecodeUint32(r Reader) (uint32, error) {
	return DecodeAs[uint32](r)
}

// DecodeUint64 reads one prefix varint from r. It is equivalent to Decode.
func DecodeUint64(r Reader) (uint64, error) {
	return Decode(r)
}

// Narrow converts an already decoded value to T, failing with ErrOverflow when it does
// not fit. It is useful for values reconstructed from several wire values, such as
// running sums of deltas.
func Narrow[T Unsigned](v uint64) (T, error) {
	limit := uint64(^T(0))
	if v > limit {
		return 0, overflowError(v, bits.Len64(limit))
	}

	return T(v), nil
}
