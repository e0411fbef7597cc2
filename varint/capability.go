package varint

// Reader is the byte source the decoder consumes.
//
// It is the only way the decoder observes or advances the caller's cursor. The buffer
// package provides implementations over byte slices (buffer.Cursor) and io.Reader
// streams (buffer.StreamReader).
type Reader interface {
	// Len returns the number of unread bytes known to be available without blocking.
	// The decoder uses it to decide whether the 9-byte fast path window is safe.
	Len() int

	// Peek returns the next n bytes without consuming them.
	// It returns io.ErrUnexpectedEOF (or io.EOF) if fewer than n bytes remain.
	Peek(n int) ([]byte, error)

	// Next consumes exactly n bytes and returns them.
	// If fewer than n bytes remain it consumes nothing and returns io.ErrUnexpectedEOF.
	Next(n int) ([]byte, error)
}

// Writer is the byte sink the encoder appends to.
//
// Implementations grow their storage as needed. The encoder never queries capacity and
// never observes a failure: an allocation failure is fatal to the process, as with any
// Go append.
type Writer interface {
	// MustWrite appends data, growing the underlying storage if necessary.
	MustWrite(data []byte)
}
