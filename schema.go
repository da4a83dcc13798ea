package transcode

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Schema binds a Codec to the parse/encode front end.
//
// Parse and Encode return errors; SafeParse and SafeEncode report the outcome
// through a Result instead. Every decode runs the codec's acceptance
// predicate first and an optional value check afterwards. Every encode runs
// the value check first and verifies the produced wire value is accepted by
// the same codec.
//
// Schemas are immutable after Define and safe for concurrent use.
// The context only scopes signal emission; no operation blocks.
type Schema[W, V any] struct {
	codec Codec[W, V]
	check func(V) error
}

// SchemaOption configures a Schema.
type SchemaOption[V any] func(*schemaOptions[V])

type schemaOptions[V any] struct {
	check func(V) error
}

// WithValueCheck adds a predicate on decoded and to-be-encoded values.
// A non-nil error from check fails the operation with ErrValue.
func WithValueCheck[V any](check func(V) error) SchemaOption[V] {
	return func(o *schemaOptions[V]) {
		o.check = check
	}
}

// Define creates a Schema for codec.
func Define[W, V any](codec Codec[W, V], opts ...SchemaOption[V]) *Schema[W, V] {
	var o schemaOptions[V]
	for _, opt := range opts {
		opt(&o)
	}

	s := &Schema[W, V]{
		codec: codec,
		check: o.check,
	}

	emitSchemaDefined(context.Background(), codec.Name())
	return s
}

// Name returns the underlying codec name.
func (s *Schema[W, V]) Name() string {
	return s.codec.Name()
}

// Codec returns the underlying codec.
func (s *Schema[W, V]) Codec() Codec[W, V] {
	return s.codec
}

// Result is the outcome of SafeParse or SafeEncode.
type Result[T any] struct {
	Value T
	Err   error
}

// Success reports whether the operation succeeded.
func (r Result[T]) Success() bool {
	return r.Err == nil
}

// Parse decodes wire into a value.
// Failures are *ParseError values wrapping ErrDecode or ErrValue; the
// codec's *FormatError is reachable with errors.As.
func (s *Schema[W, V]) Parse(ctx context.Context, wire W) (V, error) {
	start := time.Now()
	v, err := s.decode(wire)
	emitDecodeComplete(ctx, s.codec.Name(), wireSize(wire), time.Since(start), err)
	return v, err
}

// SafeParse decodes wire without returning an error value.
func (s *Schema[W, V]) SafeParse(ctx context.Context, wire W) Result[V] {
	v, err := s.Parse(ctx, wire)
	return Result[V]{Value: v, Err: err}
}

// ParseAll decodes every wire value and collects all failures.
// The returned slice has one entry per input; failed entries hold the zero value.
func (s *Schema[W, V]) ParseAll(ctx context.Context, wires ...W) ([]V, error) {
	values := make([]V, len(wires))
	var errs []error
	for i, w := range wires {
		v, err := s.Parse(ctx, w)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		values[i] = v
	}
	return values, errors.Join(errs...)
}

// Encode converts value into its wire form.
// Failures are *ParseError values wrapping ErrValue or ErrEncode.
func (s *Schema[W, V]) Encode(ctx context.Context, value V) (W, error) {
	start := time.Now()
	w, err := s.encode(value)
	emitEncodeComplete(ctx, s.codec.Name(), wireSize(w), time.Since(start), err)
	return w, err
}

// SafeEncode converts value without returning an error value.
func (s *Schema[W, V]) SafeEncode(ctx context.Context, value V) Result[W] {
	w, err := s.Encode(ctx, value)
	return Result[W]{Value: w, Err: err}
}

func (s *Schema[W, V]) decode(wire W) (V, error) {
	var zero V
	if !s.codec.Accepts(wire) {
		return zero, newParseError(s.codec.Name(), ErrDecode, rejection(s.codec, wire))
	}
	v, err := s.codec.Decode(wire)
	if err != nil {
		return zero, newParseError(s.codec.Name(), ErrDecode, err)
	}
	if s.check != nil {
		if err := s.check(v); err != nil {
			return zero, newParseError(s.codec.Name(), ErrValue, err)
		}
	}
	return v, nil
}

func (s *Schema[W, V]) encode(value V) (W, error) {
	var zero W
	if s.check != nil {
		if err := s.check(value); err != nil {
			return zero, newParseError(s.codec.Name(), ErrValue, err)
		}
	}
	w := s.codec.Encode(value)
	if !s.codec.Accepts(w) {
		return zero, newParseError(s.codec.Name(), ErrEncode, rejection(s.codec, w))
	}
	return w, nil
}

// rejection returns the codec's own explanation for a rejected wire value.
func rejection[W, V any](c Codec[W, V], wire W) error {
	if _, err := c.Decode(wire); err != nil {
		return err
	}
	return newSyntaxError(c.Name(), ErrSyntax, nil)
}

func wireSize(w any) int {
	switch v := w.(type) {
	case string:
		return len(v)
	case []byte:
		return len(v)
	}
	return 0
}
