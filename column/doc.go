// Package column stores a sequence of unsigned integers as a self-describing,
// checksummed block of prefix varints.
//
// The varint wire format has no framing of its own. A column adds the framing needed
// to persist a known sequence of values such as row counts, offsets or sorted IDs:
//
//	magic      2 bytes  'P','V'
//	version    1 byte   0x01
//	encoding   1 byte   format.EncodingType
//	compress   1 byte   format.CompressionType
//	count      varint   number of values
//	rawSize    varint   payload size before compression
//	checksum   8 bytes  xxHash64 of the uncompressed payload, little-endian
//	payload    rest     sequence of prefix varints, optionally compressed
//
// # Encodings
//
//   - format.TypeRaw: every value is stored as its own prefix varint.
//   - format.TypeDelta: the first value is stored as-is, then the difference to the
//     previous value. Input must be non-decreasing. Sorted IDs and offsets shrink to
//     one or two bytes per value this way.
//
// # Compression
//
// The payload can be compressed with any codec from the compress package. When the
// compressed payload would not be smaller than the raw one, the encoder stores it
// uncompressed and records format.CompressionNone in the header.
//
// # Usage
//
//	enc, err := column.NewEncoder(
//	    column.WithEncoding(format.TypeDelta),
//	    column.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := enc.WriteSlice(offsets); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
//	dec, err := column.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	for v := range dec.All() {
//	    ...
//	}
//
// The decoder copies the payload into a buffer padded with varint.MaxLen-1 zero
// bytes, so every value is decoded with a single 64-bit load.
package column
