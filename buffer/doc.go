// Package buffer provides the byte storage that the varint codec reads from and writes to.
//
// The codec depends only on the narrow varint.Reader and varint.Writer interfaces; this
// package supplies the common implementations:
//
//   - ByteBuffer: growable byte sequence with amortized growth (varint.Writer)
//   - ByteBufferPool: sync.Pool backed reuse of ByteBuffers
//   - Cursor: forward-only reader over a byte slice (varint.Reader)
//   - StreamReader: bufio backed reader over any io.Reader (varint.Reader)
//
// # Basic Usage
//
//	bb := buffer.GetBuffer()
//	defer buffer.PutBuffer(bb)
//
//	for _, v := range values {
//	    varint.Encode(bb, v)
//	}
//
//	cur := buffer.NewCursor(bb.Bytes())
//	for cur.Len() > 0 {
//	    v, err := varint.Decode(cur)
//	    ...
//	}
//
// # Short Reads
//
// Readers report short input with io.ErrUnexpectedEOF and consume nothing in that case,
// which lets the decoder fail atomically.
//
// # Thread Safety
//
// ByteBufferPool is safe for concurrent use. ByteBuffer, Cursor and StreamReader are
// owned by one goroutine at a time.
package buffer
