// Package options implements generic functional options.
//
// Public packages wrap Option[*config] in their own named option types so callers
// never see this package:
//
//	type EncoderOption = options.Option[*EncoderConfig]
//
//	func WithCompression(c format.CompressionType) EncoderOption {
//	    return options.New(func(cfg *EncoderConfig) error { ... })
//	}
package options

// Option configures a target of type T. Applying it may fail validation.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option from a validating function.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
