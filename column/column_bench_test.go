package column

import (
	"testing"

	"github.com/arloliu/pvarint/format"
)

func BenchmarkEncoder_Finish(b *testing.B) {
	values := sortedValues(4096)

	for _, enc := range allEncodings {
		for _, comp := range allCompressions {
			b.Run(enc.String()+"/"+comp.String(), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					e, err := NewEncoder(WithEncoding(enc), WithCompression(comp), WithSizeHint(len(values)))
					if err != nil {
						b.Fatal(err)
					}
					if err := e.WriteSlice(values); err != nil {
						b.Fatal(err)
					}
					if _, err := e.Finish(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecoder_Values(b *testing.B) {
	values := sortedValues(4096)

	for _, enc := range allEncodings {
		data := mustEncode(b, values, WithEncoding(enc), WithCompression(format.CompressionNone))
		dec, err := NewDecoder(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(enc.String()+"/Values", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := dec.Values(); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(enc.String()+"/All", func(b *testing.B) {
			var sink uint64
			for b.Loop() {
				for v := range dec.All() {
					sink += v
				}
			}
			_ = sink
		})
	}
}

func mustEncode(b *testing.B, values []uint64, opts ...EncoderOption) []byte {
	b.Helper()

	e, err := NewEncoder(opts...)
	if err != nil {
		b.Fatal(err)
	}
	if err := e.WriteSlice(values); err != nil {
		b.Fatal(err)
	}

	data, err := e.Finish()
	if err != nil {
		b.Fatal(err)
	}

	return data
}
