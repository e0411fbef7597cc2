package varint

// DecodeBatch decodes consecutive prefix varints from src into dst.
//
// Decoding stops when dst is full or src is exhausted. Values whose window lies fully
// inside src use the fast path; only the last few values of the buffer take the
// bounds-checked path.
//
// Parameters:
//   - src: Encoded bytes
//   - dst: Destination for decoded values
//
// Returns:
//   - decoded: Number of values written to dst
//   - consumed: Number of bytes of src consumed by the decoded values
//   - err: ErrTruncated if src ends in the middle of a value
func DecodeBatch(src []byte, dst []uint64) (decoded int, consumed int, err error) {
	for decoded < len(dst) && consumed < len(src) {
		if len(src)-consumed >= MaxLen {
			v, n := decodeWindow(src[consumed:])
			dst[decoded] = v
			decoded++
			consumed += n

			continue
		}

		v, n, err := Uvarint(src[consumed:])
		if err != nil {
			return decoded, consumed, err
		}
		dst[decoded] = v
		decoded++
		consumed += n
	}

	return decoded, consumed, nil
}
