// Package varint implements the prefix varint encoding for unsigned 64-bit integers.
//
// A prefix varint stores a value in 1 to 9 bytes. Unlike LEB128 (the encoding used by
// encoding/binary and Protocol Buffers), the total length is stored as a unary marker
// in the leading bits of the first byte, so a decoder learns the length from a single
// leading-ones count instead of testing a continuation bit in every byte.
//
// # Wire Format
//
// For a length N in 1..8 the first byte holds N-1 one bits, a zero terminator bit and
// the 8-N most significant payload bits. The remaining N-1 bytes hold the rest of the
// payload in little-endian order. Each length carries exactly 7*N payload bits:
//
//	N=1: 0xxxxxxx                                    (7 bits,  0..127)
//	N=2: 10xxxxxx xxxxxxxx                           (14 bits, 128..16383)
//	N=3: 110xxxxx xxxxxxxx xxxxxxxx                  (21 bits)
//	...
//	N=8: 11111110 xxxxxxxx ... xxxxxxxx              (56 bits)
//
// Values longer than 56 bits use the escape form: the marker byte 0xFF followed by the
// full value as 8 little-endian bytes. The terminator bit guarantees 0xFF never starts
// a shorter encoding.
//
// The encoder always picks the shortest length. The decoder accepts any structurally
// valid sequence, including non-minimal ones.
//
// # Basic Usage
//
// Encoding into a growable slice and decoding from a plain slice:
//
//	buf := varint.AppendUvarint(nil, 300)
//	v, n, err := varint.Uvarint(buf) // v=300, n=2
//
// Encoding and decoding through the Reader and Writer capabilities:
//
//	bb := buffer.NewByteBuffer(64)
//	varint.Encode(bb, 16384)
//
//	cur := buffer.NewCursor(bb.Bytes())
//	v, err := varint.Decode(cur)
//
// Narrowing into smaller widths with range checking:
//
//	count, err := varint.DecodeUint16(cur)
//	if errors.Is(err, varint.ErrOverflow) {
//	    // value does not fit into uint16
//	}
//
// # Fast Path
//
// When at least MaxLen bytes are known to remain, Decode and Uvarint load a 9-byte
// window once and reconstruct the value with a single 64-bit little-endian load and a
// mask. Otherwise they fall back to a bounds-checked path. Both paths return identical
// results for identical input.
//
// # Errors
//
// Decoding fails with ErrTruncated when the input ends before the length implied by the
// first byte, and with ErrOverflow when a narrowing decode does not fit the target width.
// Failed decodes never advance the reader. Encoding has no failure mode.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use on independent readers and
// writers. A single Reader or Writer must not be shared between goroutines.
package varint
