// Package compress provides compression codecs for column payloads.
//
// Compression is an optional second stage applied after values are encoded as prefix
// varints. The codec core never compresses; only the column container does.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio; klauspost/compress/zstd, or
//     valyala/gozstd when built with cgo
//   - S2 (format.CompressionS2): fast with good ratio (klauspost/compress/s2)
//   - LZ4 (format.CompressionLZ4): fastest decompression (pierrec/lz4/v4 block format)
//
// Columns of small counters are dominated by single-byte encodings and usually compress
// well; columns of random 64-bit values do not, and should use None.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4 keep
// pooled encoder state internally.
package compress
