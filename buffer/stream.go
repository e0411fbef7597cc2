package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// StreamReader adapts an io.Reader, such as a file or network connection, to varint.Reader.
//
// Input is buffered with bufio so bytes can be inspected before they are consumed.
// Len reports only bytes already buffered; the decoder uses it to pick the fast path, so
// the fast path never blocks waiting for bytes a value may not need.
type StreamReader struct {
	br *bufio.Reader
}

// NewStreamReader wraps r. If r is already a *bufio.Reader it is used directly.
func NewStreamReader(r io.Reader) *StreamReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &StreamReader{br: br}
}

// NewStreamReaderSize wraps r with a buffer of at least size bytes.
//
// The buffer size is the largest n for which Peek succeeds and Next is atomic.
func NewStreamReaderSize(r io.Reader, size int) *StreamReader {
	return &StreamReader{br: bufio.NewReaderSize(r, size)}
}

// Size returns the size of the underlying buffer.
func (s *StreamReader) Size() int {
	return s.br.Size()
}

// Len returns the number of bytes that can be read without blocking.
func (s *StreamReader) Len() int {
	return s.br.Buffered()
}

// Peek returns the next n bytes without consuming them, blocking until they arrive.
//
// At end of stream it returns io.EOF when no bytes remain and io.ErrUnexpectedEOF when
// some, but fewer than n, remain. The returned slice is valid until the next read.
// n must not exceed Size; larger requests fail with bufio.ErrBufferFull.
func (s *StreamReader) Peek(n int) ([]byte, error) {
	b, err := s.br.Peek(n)
	if err == nil {
		return b, nil
	}

	if errors.Is(err, io.EOF) && len(b) > 0 {
		return nil, io.ErrUnexpectedEOF
	}

	if errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("peek %d bytes: %w", n, err)
	}

	return nil, err
}

// Next consumes exactly n bytes and returns them.
//
// If n fits in the buffer (see Size) and the stream ends before n bytes are available,
// nothing is consumed and the returned slice is valid until the next read.
//
// Larger requests are read into a new slice owned by the caller. The stream cannot be
// rewound past the buffer, so if it ends early the bytes read so far are lost and the
// error is io.ErrUnexpectedEOF.
func (s *StreamReader) Next(n int) ([]byte, error) {
	if n > s.br.Size() {
		return s.readFull(n)
	}

	b, err := s.Peek(n)
	if err != nil {
		return nil, err
	}

	if _, err := s.br.Discard(n); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *StreamReader) readFull(n int) ([]byte, error) {
	// nothing is consumed when the stream is already at its end
	if _, err := s.br.Peek(1); err != nil {
		return nil, err
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(s.br, b); err != nil {
		return nil, err
	}

	return b, nil
}
