// Package pvarint encodes unsigned 64-bit integers as prefix varints.
//
// A prefix varint stores its length in the leading bits of the first byte, so a
// decoder knows the full size of a value after reading one byte. Values below 2^7
// take one byte, values below 2^56 take at most eight, and every uint64 fits in
// nine. The low bytes are little-endian, which lets the decoder rebuild a value with
// a single 64-bit load instead of a byte-at-a-time loop.
//
// # Core Features
//
//   - Length known from the first byte (unlike LEB128, no continuation bits)
//   - Branch-light fast path when nine bytes are available
//   - Narrowing decodes into uint8/uint16/uint32 with overflow detection
//   - Cursors that never advance on a failed decode
//   - Column container with delta encoding, compression (None, Zstd, S2, LZ4) and
//     xxHash64 checksums
//
// # Basic Usage
//
// Encoding and decoding single values:
//
//	buf := pvarint.Append(nil, 300) // []byte{0x81, 0x2C}
//	v, n, err := pvarint.Uvarint(buf)
//
// Decoding a sequence through a cursor:
//
//	cur := buffer.NewCursor(data)
//	for cur.Len() > 0 {
//	    v, err := varint.Decode(cur)
//	    ...
//	}
//
// Storing a sorted column:
//
//	data, err := pvarint.EncodeColumn(offsets,
//	    column.WithEncoding(format.TypeDelta),
//	    column.WithCompression(format.CompressionZstd),
//	)
//	values, err := pvarint.DecodeColumn(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the varint, buffer and
// column packages, simplifying the most common use cases. For streaming, narrowing
// and batch decoding, use those packages directly.
package pvarint

import (
	"slices"

	"github.com/arloliu/pvarint/column"
	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/varint"
)

var defaultColumnOptions = []column.EncoderOption{
	column.WithEncoding(format.TypeRaw),
	column.WithCompression(format.CompressionNone),
}

var sortedColumnOptions = []column.EncoderOption{
	column.WithEncoding(format.TypeDelta),
	column.WithCompression(format.CompressionZstd),
}

// Append appends the prefix varint encoding of v to dst.
func Append(dst []byte, v uint64) []byte {
	return varint.AppendUvarint(dst, v)
}

// AppendSlice appends the prefix varint encodings of all values to dst.
func AppendSlice(dst []byte, values []uint64) []byte {
	return varint.AppendUvarints(dst, values)
}

// Uvarint decodes one prefix varint from the start of src.
//
// Returns:
//   - uint64: Decoded value
//   - int: Number of bytes consumed
//   - error: varint.ErrTruncated if src is shorter than the first byte announces
func Uvarint(src []byte) (uint64, int, error) {
	return varint.Uvarint(src)
}

// DecodeAll decodes every prefix varint in src.
//
// Returns:
//   - []uint64: Decoded values in order
//   - error: varint.ErrTruncated if src ends in the middle of a value
func DecodeAll(src []byte) ([]uint64, error) {
	// every value is at least one byte
	values := make([]uint64, len(src))

	decoded, _, err := varint.DecodeBatch(src, values)
	if err != nil {
		return nil, err
	}

	return values[:decoded], nil
}

// Size returns the number of bytes v occupies when encoded.
func Size(v uint64) int {
	return varint.RequiredLen(v)
}

// NewColumnEncoder creates a column encoder with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see column.EncoderOption)
//
// Returns:
//   - *column.Encoder: The created column encoder.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - column.WithEncoding(format.TypeRaw|TypeDelta)
//   - column.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - column.WithSizeHint(n)
func NewColumnEncoder(opts ...column.EncoderOption) (*column.Encoder, error) {
	return column.NewEncoder(opts...)
}

// NewDefaultColumnEncoder creates a column encoder with raw encoding and no
// compression. It accepts values in any order.
func NewDefaultColumnEncoder() (*column.Encoder, error) {
	return column.NewEncoder(defaultColumnOptions...)
}

// NewSortedColumnEncoder creates a column encoder for non-decreasing values such as
// offsets or sorted IDs: delta encoding with Zstd compression.
func NewSortedColumnEncoder() (*column.Encoder, error) {
	return column.NewEncoder(sortedColumnOptions...)
}

// NewColumnDecoder creates a decoder for a column produced by any of the encoders.
func NewColumnDecoder(data []byte) (*column.Decoder, error) {
	return column.NewDecoder(data)
}

// EncodeColumn encodes values into a column in one call.
//
// Options are applied on top of the defaults of NewDefaultColumnEncoder.
func EncodeColumn(values []uint64, opts ...column.EncoderOption) ([]byte, error) {
	enc, err := column.NewEncoder(slices.Concat(defaultColumnOptions, opts)...)
	if err != nil {
		return nil, err
	}

	if err := enc.WriteSlice(values); err != nil {
		_, _ = enc.Finish()
		return nil, err
	}

	return enc.Finish()
}

// DecodeColumn decodes every value of a column in one call.
func DecodeColumn(data []byte) ([]uint64, error) {
	dec, err := column.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Values()
}
