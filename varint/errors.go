package varint

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated reports that the input ended before the length implied by the first byte.
	ErrTruncated = errors.New("varint: truncated input")

	// ErrOverflow reports that a decoded value exceeds the maximum of the requested width.
	ErrOverflow = errors.New("varint: value overflows target width")
)

func truncatedError(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, have)
}

func overflowError(v uint64, bitWidth int) error {
	return fmt.Errorf("%w: %d does not fit in uint%d", ErrOverflow, v, bitWidth)
}

// readError classifies an error returned by a Reader.
//
// Short reads become ErrTruncated. Anything else, such as a failing network stream,
// is passed through with context so callers can still match the original error.
func readError(r Reader, err error, need int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes, have %d: %w", ErrTruncated, need, r.Len(), err)
	}

	return fmt.Errorf("varint: read %d bytes: %w", need, err)
}
