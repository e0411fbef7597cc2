package buffer

import "io"

// Cursor is a forward-only reader over a byte slice.
//
// Peek and Next return subslices of the underlying data without copying. The cursor
// never moves backwards except through Reset.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.off
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the unread bytes without consuming them.
func (c *Cursor) Remaining() []byte {
	return c.data[c.off:]
}

// Peek returns the next n bytes without consuming them.
//
// Returns io.ErrUnexpectedEOF if fewer than n bytes remain.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, io.ErrUnexpectedEOF
	}

	return c.data[c.off : c.off+n : c.off+n], nil
}

// Next consumes exactly n bytes and returns them.
//
// If fewer than n bytes remain, nothing is consumed and io.ErrUnexpectedEOF is returned.
func (c *Cursor) Next(n int) ([]byte, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.off += n

	return b, nil
}

// Reset repositions the cursor at the start of data.
func (c *Cursor) Reset(data []byte) {
	c.data = data
	c.off = 0
}
