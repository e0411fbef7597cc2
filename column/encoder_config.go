package column

import (
	"fmt"

	"github.com/arloliu/pvarint/format"
	"github.com/arloliu/pvarint/internal/options"
)

// EncoderConfig holds the settings applied by EncoderOption values.
type EncoderConfig struct {
	encoding    format.EncodingType
	compression format.CompressionType
	sizeHint    int
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
	}
}

// WithEncoding selects how values are laid out in the payload.
//
// The default is format.TypeRaw.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !enc.Valid() {
			return fmt.Errorf("invalid column encoding: %s", enc)
		}
		c.encoding = enc

		return nil
	})
}

// WithCompression selects the payload compression.
//
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !comp.Valid() {
			return fmt.Errorf("invalid column compression: %s", comp)
		}
		c.compression = comp

		return nil
	})
}

// WithSizeHint reserves payload space for the expected number of values.
func WithSizeHint(values int) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.sizeHint = max(values, 0)
	})
}
