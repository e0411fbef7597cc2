package column

import "errors"

var (
	// ErrInvalidHeader reports a column whose header is malformed or truncated.
	ErrInvalidHeader = errors.New("column: invalid header")

	// ErrUnsupportedVersion reports a column written by an unknown format version.
	ErrUnsupportedVersion = errors.New("column: unsupported version")

	// ErrChecksumMismatch reports a payload whose checksum differs from the header.
	ErrChecksumMismatch = errors.New("column: checksum mismatch")

	// ErrCorruptPayload reports a payload that passed the checksum but does not hold
	// the number of values the header announces.
	ErrCorruptPayload = errors.New("column: corrupt payload")

	// ErrNotMonotonic reports a decreasing value written to a delta encoded column.
	ErrNotMonotonic = errors.New("column: delta encoding requires non-decreasing values")

	// ErrPayloadTooLarge reports a payload above MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("column: payload too large")
)
