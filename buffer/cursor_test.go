package buffer

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pvarint/varint"
)

func TestCursor_PeekNext(t *testing.T) {
	cur := NewCursor([]byte{1, 2, 3, 4})

	b, err := cur.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, 0, cur.Offset(), "Peek must not consume")

	b, err = cur.Next(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
	require.Equal(t, 3, cur.Offset())
	require.Equal(t, 1, cur.Len())
	require.Equal(t, []byte{4}, cur.Remaining())
}

func TestCursor_ShortReadConsumesNothing(t *testing.T) {
	cur := NewCursor([]byte{1, 2, 3})
	_, err := cur.Next(1)
	require.NoError(t, err)

	_, err = cur.Next(3)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 1, cur.Offset())

	_, err = cur.Peek(3)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = cur.Peek(-1)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCursor_PeekIsCapped(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	cur := NewCursor(data)

	b, err := cur.Peek(2)
	require.NoError(t, err)
	require.Equal(t, 2, cap(b), "peeked slice must not expose unread bytes")
}

func TestCursor_Reset(t *testing.T) {
	cur := NewCursor([]byte{1, 2})
	_, err := cur.Next(2)
	require.NoError(t, err)

	cur.Reset([]byte{9})
	require.Equal(t, 0, cur.Offset())
	require.Equal(t, 1, cur.Len())
}

func TestCursor_DecodeSequence(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16384, 1 << 56, math.MaxUint64}
	bb := NewByteBuffer(0)
	for _, v := range values {
		varint.Encode(bb, v)
	}

	cur := NewCursor(bb.Bytes())
	for _, want := range values {
		got, err := varint.Decode(cur)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.Equal(t, 0, cur.Len())
	_, err := varint.Decode(cur)
	require.ErrorIs(t, err, varint.ErrTruncated)
}
