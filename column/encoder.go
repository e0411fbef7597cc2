package column

import (
	"fmt"

	"github.com/arloliu/pvarint/buffer"
	"github.com/arloliu/pvarint/compress"
	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/internal/hash"
	"github.com/arloliu/pvarint/internal/options"
	"github.com/arloliu/pvarint/varint"
)

// Encoder builds a column from a stream of values.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After Finish, any further
// call panics; create a new encoder for the next column.
type Encoder struct {
	cfg      *EncoderConfig
	codec    compress.Codec
	buf      *buffer.ByteBuffer
	count    int
	prev     uint64
	stats    compress.CompressionStats
	finished bool
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (encoding, compression, size hint)
//
// Returns:
//   - *Encoder: New encoder ready for values
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "column")
	if err != nil {
		return nil, err
	}

	buf := buffer.GetBuffer()
	if cfg.sizeHint > 0 {
		buf.Grow(cfg.sizeHint)
	}

	return &Encoder{
		cfg:   cfg,
		codec: codec,
		buf:   buf,
	}, nil
}

// Write appends one value.
//
// Returns:
//   - error: ErrNotMonotonic if the column is delta encoded and v is smaller than the
//     previous value; the value is not written
func (e *Encoder) Write(v uint64) error {
	e.mustNotBeFinished()

	if e.cfg.encoding == format.TypeDelta {
		if e.count > 0 && v < e.prev {
			return fmt.Errorf("%w: %d after %d at index %d", ErrNotMonotonic, v, e.prev, e.count)
		}
		varint.Encode(e.buf, v-e.prev)
	} else {
		varint.Encode(e.buf, v)
	}

	e.prev = v
	e.count++

	return nil
}

// WriteSlice appends all values of vs.
//
// The slice is validated before anything is written, so on error the encoder is left
// exactly as it was.
//
// Returns:
//   - error: ErrNotMonotonic if the column is delta encoded and vs is not
//     non-decreasing (including against the last value already written)
func (e *Encoder) WriteSlice(vs []uint64) error {
	e.mustNotBeFinished()

	if len(vs) == 0 {
		return nil
	}

	if e.cfg.encoding != format.TypeDelta {
		e.buf.Grow(varint.EncodedSize(vs))
		e.buf.B = varint.AppendUvarints(e.buf.B, vs)
		e.prev = vs[len(vs)-1]
		e.count += len(vs)

		return nil
	}

	prev := e.prev
	for i, v := range vs {
		if (e.count > 0 || i > 0) && v < prev {
			return fmt.Errorf("%w: %d after %d at index %d", ErrNotMonotonic, v, prev, e.count+i)
		}
		prev = v
	}

	// deltas are never longer than the values themselves
	e.buf.Grow(varint.EncodedSize(vs))
	for _, v := range vs {
		e.buf.B = varint.AppendUvarint(e.buf.B, v-e.prev)
		e.prev = v
	}
	e.count += len(vs)

	return nil
}

// Len returns the number of values written so far.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the uncompressed payload size in bytes.
func (e *Encoder) Size() int {
	e.mustNotBeFinished()
	return e.buf.Len()
}

// Stats returns the compression result of the last Finish call.
//
// Stats.Algorithm is the compression actually stored, which is
// format.CompressionNone when compressing did not shrink the payload.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

// Finish builds the encoded column and releases the encoder's buffer.
//
// The returned slice is owned by the caller. The encoder cannot be used afterwards.
//
// Returns:
//   - []byte: Header followed by the (possibly compressed) payload
//   - error: ErrPayloadTooLarge or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	e.mustNotBeFinished()
	e.finished = true

	defer func() {
		buffer.PutBuffer(e.buf)
		e.buf = nil
	}()

	payload := e.buf.Bytes()
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	header := Header{
		Encoding:    e.cfg.encoding,
		Compression: e.cfg.compression,
		Count:       e.count,
		RawSize:     len(payload),
		Checksum:    hash.Checksum(payload),
	}

	body := payload
	if header.Compression != format.CompressionNone {
		compressed, err := e.codec.Compress(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to compress column payload: %w", err)
		}

		// LZ4 reports incompressible input as an empty block
		if len(compressed) == 0 || len(compressed) >= len(payload) {
			header.Compression = format.CompressionNone
		} else {
			body = compressed
		}
	}

	e.stats = compress.CompressionStats{
		Algorithm:      header.Compression,
		OriginalSize:   int64(len(payload)),
		CompressedSize: int64(len(body)),
	}

	// payload lives in a pooled buffer, so copy it out
	out := make([]byte, 0, MaxHeaderSize+len(body))
	out = header.AppendTo(out)
	out = append(out, body...)

	return out, nil
}

func (e *Encoder) mustNotBeFinished() {
	if e.finished {
		panic("column: encoder used after Finish")
	}
}
