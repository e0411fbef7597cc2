package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/varint"
)

func TestHeader_RoundTrip(t *testing.T) {
	want := Header{
		Encoding:    format.TypeDelta,
		Compression: format.CompressionS2,
		Count:       1000,
		RawSize:     16384,
		Checksum:    0x0123456789abcdef,
	}

	data := want.AppendTo(nil)
	require.LessOrEqual(t, len(data), MaxHeaderSize)

	got, n, err := ParseHeader(append(data, 0xAA, 0xBB))
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, len(data), n, "payload offset must follow the header")
}

func TestHeader_Layout(t *testing.T) {
	h := Header{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionNone,
		Count:       2,
		RawSize:     300,
		Checksum:    1,
	}

	want := []byte{
		'P', 'V', 0x01, 0x01, 0x01,
		0x02,       // count
		0x81, 0x2C, // rawSize 300
		0x01, 0, 0, 0, 0, 0, 0, 0,
	}
	require.Equal(t, want, h.AppendTo(nil))
}

func TestParseHeader_Errors(t *testing.T) {
	valid := Header{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionNone,
		Count:       1,
		RawSize:     1,
	}.AppendTo(nil)

	mutate := func(i int, b byte) []byte {
		data := append([]byte(nil), valid...)
		data[i] = b

		return data
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidHeader},
		{"short fixed part", valid[:4], ErrInvalidHeader},
		{"bad magic", mutate(0, 'X'), ErrInvalidHeader},
		{"future version", mutate(2, 0x02), ErrUnsupportedVersion},
		{"unknown encoding", mutate(3, 0x07), ErrInvalidHeader},
		{"unknown compression", mutate(4, 0x00), ErrInvalidHeader},
		{"missing count", valid[:fixedHeaderSize], ErrInvalidHeader},
		{"truncated checksum", valid[:len(valid)-1], ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseHeader(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseHeader_TruncatedVarint(t *testing.T) {
	data := []byte{'P', 'V', Version, byte(format.TypeRaw), byte(format.CompressionNone)}
	// count needs three bytes, only one present
	data = append(data, varint.AppendUvarint(nil, 1<<20)[:1]...)

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, ErrInvalidHeader)
	require.ErrorIs(t, err, varint.ErrTruncated)
}

func TestParseHeader_CountExceedsPayload(t *testing.T) {
	data := Header{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionNone,
		Count:       3,
		RawSize:     2,
	}.AppendTo(nil)

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseHeader_PayloadTooLarge(t *testing.T) {
	data := Header{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionNone,
		RawSize:     MaxPayloadSize + 1,
	}.AppendTo(nil)

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, ErrInvalidHeader)
}
