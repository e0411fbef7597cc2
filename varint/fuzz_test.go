package varint

import (
	"testing"

	"github.com/arloliu/pvarint/buffer"
)

func FuzzRoundTrip(f *testing.F) {
	for _, v := range boundaryValues() {
		f.Add(v)
	}

	f.Fuzz(func(t *testing.T, v uint64) {
		encoded := AppendUvarint(nil, v)
		if len(encoded) != RequiredLen(v) {
			t.Fatalf("value %d: encoded %d bytes, RequiredLen %d", v, len(encoded), RequiredLen(v))
		}

		got, n, err := Uvarint(encoded)
		if err != nil || got != v || n != len(encoded) {
			t.Fatalf("value %d: Uvarint = (%d, %d, %v)", v, got, n, err)
		}
	})
}

// FuzzDecodePaths feeds arbitrary bytes to every decode entry point and requires
// identical results.
func FuzzDecodePaths(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x81, 0x2C})
	f.Add([]byte{0xFF, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{0xFE, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		sliceV, sliceN, sliceErr := Uvarint(data)

		cur := buffer.NewCursor(data)
		readerV, readerErr := Decode(cur)

		if (sliceErr == nil) != (readerErr == nil) {
			t.Fatalf("error mismatch: slice %v, reader %v", sliceErr, readerErr)
		}

		if sliceErr != nil {
			if cur.Offset() != 0 {
				t.Fatalf("cursor advanced to %d on failure", cur.Offset())
			}

			return
		}

		if sliceV != readerV || sliceN != cur.Offset() {
			t.Fatalf("slice (%d, %d) != reader (%d, %d)", sliceV, sliceN, readerV, cur.Offset())
		}

		if sliceN < len(data) {
			// the bytes that follow must not influence the value
			exactV, exactN, err := Uvarint(data[:sliceN])
			if err != nil || exactV != sliceV || exactN != sliceN {
				t.Fatalf("exact slice decode (%d, %d, %v) != (%d, %d)", exactV, exactN, err, sliceV, sliceN)
			}
		}
	})
}
