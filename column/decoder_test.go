package column

import (
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pvarint/compress"
	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/internal/hash"
	"github.com/arloliu/pvarint/varint"
)

var (
	allEncodings    = []format.EncodingType{format.TypeRaw, format.TypeDelta}
	allCompressions = []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
)

// sortedValues returns seeded non-decreasing values spanning every encoded length.
func sortedValues(count int) []uint64 {
	rng := rand.New(rand.NewPCG(7, 7)) //nolint:gosec

	values := make([]uint64, count)
	for i := range values {
		values[i] = rng.Uint64() >> rng.UintN(64)
	}
	values[0] = 0
	values[count-1] = math.MaxUint64
	slices.Sort(values)

	return values
}

func encodeColumn(t *testing.T, values []uint64, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	require.NoError(t, enc.WriteSlice(values))

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}

// rawColumn frames payload with a valid header, bypassing the encoder's checks.
func rawColumn(enc format.EncodingType, count int, payload []byte) []byte {
	h := Header{
		Encoding:    enc,
		Compression: format.CompressionNone,
		Count:       count,
		RawSize:     len(payload),
		Checksum:    hash.Checksum(payload),
	}

	return append(h.AppendTo(nil), payload...)
}

func TestColumn_RoundTrip(t *testing.T) {
	values := sortedValues(5000)

	for _, enc := range allEncodings {
		for _, comp := range allCompressions {
			t.Run(enc.String()+"/"+comp.String(), func(t *testing.T) {
				data := encodeColumn(t, values, WithEncoding(enc), WithCompression(comp))

				dec, err := NewDecoder(data)
				require.NoError(t, err)
				require.Equal(t, len(values), dec.Len())
				require.Equal(t, enc, dec.Encoding())

				got, err := dec.Values()
				require.NoError(t, err)
				require.Equal(t, values, got)

				require.Equal(t, values, slices.Collect(dec.All()))
			})
		}
	}
}

func TestColumn_DeltaIsSmaller(t *testing.T) {
	values := make([]uint64, 1000)
	for i := range values {
		values[i] = 1<<40 + uint64(i)*3
	}

	raw := encodeColumn(t, values)
	delta := encodeColumn(t, values, WithEncoding(format.TypeDelta))

	assert.Less(t, len(delta), len(raw)/4)
}

func TestColumn_Empty(t *testing.T) {
	for _, enc := range allEncodings {
		data := encodeColumn(t, nil, WithEncoding(enc), WithCompression(format.CompressionZstd))

		dec, err := NewDecoder(data)
		require.NoError(t, err)
		assert.Equal(t, 0, dec.Len())

		got, err := dec.Values()
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, slices.Collect(dec.All()))
	}
}

func TestDecoder_DataReusable(t *testing.T) {
	values := []uint64{1, 2, 3}
	data := encodeColumn(t, values)

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	clear(data)

	got, err := dec.Values()
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestDecoder_ChecksumMismatch(t *testing.T) {
	data := encodeColumn(t, []uint64{10, 20, 30})
	data[len(data)-1] ^= 0x01

	_, err := NewDecoder(data)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecoder_PayloadSizeMismatch(t *testing.T) {
	data := encodeColumn(t, []uint64{10, 20, 30})

	_, err := NewDecoder(data[:len(data)-1])
	require.ErrorIs(t, err, ErrCorruptPayload)

	_, err = NewDecoder(append(data, 0x00))
	require.ErrorIs(t, err, ErrCorruptPayload)
}

func TestDecoder_CorruptCompressedPayload(t *testing.T) {
	values := make([]uint64, 4096)
	data := encodeColumn(t, values, WithCompression(format.CompressionS2))

	h, n, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, h.Compression)

	_, err = NewDecoder(data[:n+(len(data)-n)/2])
	require.Error(t, err)
}

func TestDecoder_CompressedBodyLargerThanHeader(t *testing.T) {
	// 64 MiB of zeros compress to a few KiB but claim a one byte payload
	body, err := compress.NewZstdCompressor().Compress(make([]byte, 64<<20))
	require.NoError(t, err)

	h := Header{
		Encoding:    format.TypeRaw,
		Compression: format.CompressionZstd,
		Count:       1,
		RawSize:     1,
	}
	data := append(h.AppendTo(nil), body...)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	_, err = NewDecoder(data)

	runtime.ReadMemStats(&after)
	require.ErrorIs(t, err, ErrCorruptPayload)
	require.ErrorIs(t, err, compress.ErrSizeMismatch)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(8<<20), "decoding must stop at the header size")
}

func TestDecoder_TrailingBytes(t *testing.T) {
	data := rawColumn(format.TypeRaw, 1, []byte{0x05, 0x06})

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	_, err = dec.Values()
	require.ErrorIs(t, err, ErrCorruptPayload)

	// the iterator still yields what it could decode
	assert.Equal(t, []uint64{5}, slices.Collect(dec.All()))
}

func TestDecoder_ValueRunsPastPayload(t *testing.T) {
	// 300 takes both payload bytes, the second value has nothing left
	data := rawColumn(format.TypeRaw, 2, varint.AppendUvarint(nil, 300))

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	_, err = dec.Values()
	require.ErrorIs(t, err, varint.ErrTruncated)

	assert.Equal(t, []uint64{300}, slices.Collect(dec.All()))
}

func TestDecoder_DeltaOverflow(t *testing.T) {
	payload := varint.AppendUvarints(nil, []uint64{math.MaxUint64, 1})
	dec, err := NewDecoder(rawColumn(format.TypeDelta, 2, payload))
	require.NoError(t, err)

	_, err = dec.Values()
	require.ErrorIs(t, err, ErrCorruptPayload)

	assert.Equal(t, []uint64{math.MaxUint64}, slices.Collect(dec.All()))
}

func TestDecoder_AllStopsEarly(t *testing.T) {
	dec, err := NewDecoder(encodeColumn(t, []uint64{1, 2, 3, 4, 5}))
	require.NoError(t, err)

	var got []uint64
	for v := range dec.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []uint64{1, 2}, got)
}

func TestValuesAs(t *testing.T) {
	dec, err := NewDecoder(encodeColumn(t, []uint64{0, 200, 255}))
	require.NoError(t, err)

	got, err := ValuesAs[uint8](dec)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 200, 255}, got)
}

func TestValuesAs_Overflow(t *testing.T) {
	// each delta fits in a byte, the running sum does not
	dec, err := NewDecoder(encodeColumn(t, []uint64{250, 260}, WithEncoding(format.TypeDelta)))
	require.NoError(t, err)

	_, err = ValuesAs[uint8](dec)
	require.ErrorIs(t, err, varint.ErrOverflow)

	got, err := ValuesAs[uint16](dec)
	require.NoError(t, err)
	assert.Equal(t, []uint16{250, 260}, got)
}

func TestDecoder_ConcurrentReaders(t *testing.T) {
	values := sortedValues(2000)
	dec, err := NewDecoder(encodeColumn(t, values, WithEncoding(format.TypeDelta), WithCompression(format.CompressionLZ4)))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, values, slices.Collect(dec.All()))
		}()
	}
	wg.Wait()
}
