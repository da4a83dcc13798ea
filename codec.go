package transcode

import "errors"

// Codec maps a wire value W to a typed value V and back.
//
// Implementations must keep Accepts and Decode in agreement: Decode fails
// with a *FormatError exactly when Accepts reports false. Encode is total
// and its output is always accepted by the same codec.
type Codec[W, V any] interface {
	// Name returns the codec identifier used in errors, signals, and tags (e.g., "base64").
	Name() string

	// Accepts reports whether wire is decodable. It never panics.
	Accepts(wire W) bool

	// Decode converts wire into a value. It never returns a partial result.
	Decode(wire W) (V, error)

	// Encode converts value into its wire form.
	Encode(value V) W
}

// funcCodec adapts a predicate and a decode/encode pair into a Codec.
type funcCodec[W, V any] struct {
	name    string
	accepts func(W) bool
	decode  func(W) (V, error)
	encode  func(V) W
}

// Func returns a Codec built from an acceptance predicate and a decode/encode pair.
//
// Decode consults accepts first and fails with ErrSyntax when it rejects the
// input, so the pair only has to handle accepted input. Errors returned by
// decode that do not already carry a *FormatError are wrapped in one.
func Func[W, V any](name string, accepts func(W) bool, decode func(W) (V, error), encode func(V) W) Codec[W, V] {
	return &funcCodec[W, V]{
		name:    name,
		accepts: accepts,
		decode:  decode,
		encode:  encode,
	}
}

func (c *funcCodec[W, V]) Name() string {
	return c.name
}

func (c *funcCodec[W, V]) Accepts(wire W) bool {
	return c.accepts(wire)
}

func (c *funcCodec[W, V]) Decode(wire W) (V, error) {
	var zero V
	if !c.accepts(wire) {
		return zero, newSyntaxError(c.name, ErrSyntax, nil)
	}
	v, err := c.decode(wire)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return zero, err
		}
		return zero, newSyntaxError(c.name, ErrSyntax, err)
	}
	return v, nil
}

func (c *funcCodec[W, V]) Encode(value V) W {
	return c.encode(value)
}

// delegateCodec hosts codecs whose decode is a call into a trusted parser.
// Acceptance is defined as that parser succeeding, so both always agree.
type delegateCodec[W, V any] struct {
	name   string
	parse  func(W) (V, error)
	format func(V) W
}

func (c delegateCodec[W, V]) Name() string {
	return c.name
}

func (c delegateCodec[W, V]) Accepts(wire W) bool {
	_, err := c.parse(wire)
	return err == nil
}

func (c delegateCodec[W, V]) Decode(wire W) (V, error) {
	return c.parse(wire)
}

func (c delegateCodec[W, V]) Encode(value V) W {
	return c.format(value)
}
