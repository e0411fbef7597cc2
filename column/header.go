package column

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/pvarint/buffer"
	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/varint"
)

const (
	// Version is the column format version written by this package.
	Version = 0x01

	// MaxPayloadSize is the largest uncompressed payload a column may hold.
	MaxPayloadSize = 1 << 30

	magic0 = 'P'
	magic1 = 'V'

	// magic, version, encoding and compression bytes
	fixedHeaderSize = 5
	checksumSize    = 8

	// MaxHeaderSize is the largest possible encoded header.
	MaxHeaderSize = fixedHeaderSize + 2*varint.MaxLen + checksumSize
)

// Header describes a column. It precedes the payload in the encoded form.
type Header struct {
	Encoding    format.EncodingType
	Compression format.CompressionType
	Count       int    // number of values
	RawSize     int    // payload size before compression
	Checksum    uint64 // xxHash64 of the uncompressed payload
}

// AppendTo appends the encoded header to dst and returns the extended slice.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, magic0, magic1, Version, byte(h.Encoding), byte(h.Compression))
	dst = varint.AppendUvarint(dst, uint64(h.Count))   //nolint: gosec
	dst = varint.AppendUvarint(dst, uint64(h.RawSize)) //nolint: gosec
	dst = binary.LittleEndian.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader decodes the header at the start of data.
//
// Parameters:
//   - data: Encoded column
//
// Returns:
//   - Header: Decoded header
//   - int: Number of header bytes; the payload starts at this offset
//   - error: ErrInvalidHeader or ErrUnsupportedVersion
func ParseHeader(data []byte) (Header, int, error) {
	var h Header

	if len(data) < fixedHeaderSize {
		return h, 0, fmt.Errorf("%w: %d bytes is shorter than the fixed header", ErrInvalidHeader, len(data))
	}

	if data[0] != magic0 || data[1] != magic1 {
		return h, 0, fmt.Errorf("%w: bad magic %#x %#x", ErrInvalidHeader, data[0], data[1])
	}

	if data[2] != Version {
		return h, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[2])
	}

	h.Encoding = format.EncodingType(data[3])
	if !h.Encoding.Valid() {
		return h, 0, fmt.Errorf("%w: unknown encoding %#x", ErrInvalidHeader, data[3])
	}

	h.Compression = format.CompressionType(data[4])
	if !h.Compression.Valid() {
		return h, 0, fmt.Errorf("%w: unknown compression %#x", ErrInvalidHeader, data[4])
	}

	cur := buffer.NewCursor(data[fixedHeaderSize:])

	count, err := varint.Decode(cur)
	if err != nil {
		return h, 0, fmt.Errorf("%w: value count: %w", ErrInvalidHeader, err)
	}

	rawSize, err := varint.Decode(cur)
	if err != nil {
		return h, 0, fmt.Errorf("%w: payload size: %w", ErrInvalidHeader, err)
	}

	if rawSize > MaxPayloadSize {
		return h, 0, fmt.Errorf("%w: payload size %d exceeds %d", ErrInvalidHeader, rawSize, MaxPayloadSize)
	}

	// every value takes at least one byte
	if count > rawSize {
		return h, 0, fmt.Errorf("%w: %d values cannot fit in %d bytes", ErrInvalidHeader, count, rawSize)
	}

	sum, err := cur.Next(checksumSize)
	if err != nil {
		return h, 0, fmt.Errorf("%w: checksum: %w", ErrInvalidHeader, err)
	}

	h.Count = int(count)     //nolint: gosec
	h.RawSize = int(rawSize) //nolint: gosec
	h.Checksum = binary.LittleEndian.Uint64(sum)

	return h, fixedHeaderSize + cur.Offset(), nil
}
