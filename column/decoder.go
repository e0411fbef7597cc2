package column

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arloliu/pvarint/compress"
	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/internal/hash"
	"github.com/arloliu/pvarint/varint"
)

// padding lets the last value of a payload decode with a full window.
const padding = varint.MaxLen - 1

// Decoder reads values from an encoded column.
//
// NewDecoder verifies the whole column up front. The Decoder is read-only afterwards
// and safe for concurrent use.
type Decoder struct {
	header Header
	// uncompressed payload followed by padding zero bytes
	payload []byte
}

// NewDecoder validates data and prepares its values for reading.
//
// The payload is decompressed and copied, so data may be reused once NewDecoder
// returns.
//
// Parameters:
//   - data: Encoded column produced by Encoder.Finish
//
// Returns:
//   - *Decoder: Decoder over the verified payload
//   - error: ErrInvalidHeader, ErrUnsupportedVersion, ErrCorruptPayload,
//     ErrChecksumMismatch, or a decompression error
func NewDecoder(data []byte) (*Decoder, error) {
	header, n, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	// the header size bounds decompression, so a small body cannot claim a huge payload
	raw, err := codec.DecompressSize(data[n:], header.RawSize)
	if err != nil {
		if errors.Is(err, compress.ErrSizeMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
		}

		return nil, fmt.Errorf("failed to decompress column payload: %w", err)
	}

	if sum := hash.Checksum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %#016x, want %#016x", ErrChecksumMismatch, sum, header.Checksum)
	}

	payload := make([]byte, header.RawSize+padding)
	copy(payload, raw)

	return &Decoder{header: header, payload: payload}, nil
}

// Header returns the decoded column header.
func (d *Decoder) Header() Header {
	return d.header
}

// Len returns the number of values in the column.
func (d *Decoder) Len() int {
	return d.header.Count
}

// Encoding returns the value layout of the column.
func (d *Decoder) Encoding() format.EncodingType {
	return d.header.Encoding
}

// Compression returns the compression the payload was stored with.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Compression
}

// All returns an iterator over the values in order.
//
// Iteration stops early if the payload turns out to be malformed; use Values to
// observe the error.
func (d *Decoder) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		_ = d.each(yield)
	}
}

// Values decodes all values into a new slice.
//
// Returns:
//   - []uint64: Decoded values, len equals Len()
//   - error: varint.ErrTruncated or ErrCorruptPayload if the payload does not hold
//     exactly Len() values
func (d *Decoder) Values() ([]uint64, error) {
	values := make([]uint64, d.header.Count)

	decoded, consumed, err := varint.DecodeBatch(d.payload, values)
	if err != nil {
		return nil, err
	}
	if err := d.checkConsumed(decoded, consumed); err != nil {
		return nil, err
	}

	if d.header.Encoding == format.TypeDelta {
		for i := 1; i < len(values); i++ {
			sum := values[i-1] + values[i]
			if sum < values[i-1] {
				return nil, deltaOverflowError(i)
			}
			values[i] = sum
		}
	}

	return values, nil
}

// ValuesAs decodes all values of d and converts them to T.
//
// Returns:
//   - []T: Decoded values
//   - error: varint.ErrOverflow if any value does not fit in T, or any error of
//     Decoder.Values
func ValuesAs[T varint.Unsigned](d *Decoder) ([]T, error) {
	values, err := d.Values()
	if err != nil {
		return nil, err
	}

	out := make([]T, len(values))
	for i, v := range values {
		n, err := varint.Narrow[T](v)
		if err != nil {
			return nil, fmt.Errorf("value at index %d: %w", i, err)
		}
		out[i] = n
	}

	return out, nil
}

// each calls fn for every value until fn returns false.
func (d *Decoder) each(fn func(uint64) bool) error {
	var (
		offset int
		prev   uint64
	)

	delta := d.header.Encoding == format.TypeDelta

	for i := range d.header.Count {
		// padding guarantees a full window for every offset inside the payload
		v, n, err := varint.Uvarint(d.payload[offset:])
		if err != nil {
			return err
		}
		offset += n
		if offset > d.header.RawSize {
			return fmt.Errorf("%w: value %d runs past the end of the payload", varint.ErrTruncated, i)
		}

		if delta {
			sum := prev + v
			if sum < prev {
				return deltaOverflowError(i)
			}
			v = sum
			prev = sum
		}

		if !fn(v) {
			return nil
		}
	}

	return d.checkConsumed(d.header.Count, offset)
}

func (d *Decoder) checkConsumed(decoded, consumed int) error {
	switch {
	case decoded != d.header.Count || consumed > d.header.RawSize:
		return fmt.Errorf("%w: %d values need more than %d payload bytes", varint.ErrTruncated, d.header.Count, d.header.RawSize)
	case consumed < d.header.RawSize:
		return fmt.Errorf("%w: %d trailing bytes after %d values", ErrCorruptPayload, d.header.RawSize-consumed, d.header.Count)
	default:
		return nil
	}
}

func deltaOverflowError(index int) error {
	return fmt.Errorf("%w: running sum overflows uint64 at index %d", ErrCorruptPayload, index)
}
