package transcode

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// bindTag declares a field's wire key and codec: `transcode:"key,codec"`.
// An empty key (`transcode:",hex"`) uses the Go field name; "-" skips the field.
const bindTag = "transcode"

func init() {
	sentinel.Tag(bindTag)
}

var (
	timeType      = reflect.TypeFor[time.Time]()
	bigIntType    = reflect.TypeFor[*big.Int]()
	urlType       = reflect.TypeFor[*url.URL]()
	paramsType    = reflect.TypeFor[Params]()
	stringMapType = reflect.TypeFor[map[string]string]()
)

// fieldConverter moves one struct field between wire text and its Go value.
type fieldConverter struct {
	accepts func(s string) bool
	decode  func(s string, dst reflect.Value) error
	encode  func(src reflect.Value) (string, bool) // false omits the key
}

// bindFieldPlan describes how to bind a single field.
type bindFieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // Go field name for error messages
	key   string // wire key
	codec string // codec name from the tag
	conv  fieldConverter
}

// bindPlan holds the field plans for one struct type (immutable after construction).
type bindPlan struct {
	typeName string
	fields   []bindFieldPlan
}

var (
	bindPlans   = make(map[reflect.Type]*bindPlan)
	bindPlansMu sync.RWMutex
)

// Bind decodes values into a new T, one tagged field per key.
//
// Keys absent from values leave their field at the zero value. Every field
// failure is collected; the returned error joins one *FieldError per field.
// If *T implements Binder, its BindValues method is used instead.
func Bind[T any](ctx context.Context, values map[string]string) (*T, error) {
	var out T
	if b, ok := any(&out).(Binder); ok {
		start := time.Now()
		err := b.BindValues(values)
		emitBindComplete(ctx, overrideTypeName[T](), len(values), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}

	plan, err := getOrBuildBindPlan[T]()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rv := reflect.ValueOf(&out).Elem()

	var errs []error
	bound := 0
	for _, f := range plan.fields {
		s, ok := values[f.key]
		if !ok {
			continue
		}
		if err := f.conv.decode(s, rv.FieldByIndex(f.index)); err != nil {
			errs = append(errs, &FieldError{Field: f.name, Key: f.key, Codec: f.codec, Cause: err})
			continue
		}
		bound++
	}

	err = errors.Join(errs...)
	emitBindComplete(ctx, plan.typeName, bound, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Unbind encodes the tagged fields of v into a key/value map.
// Nil pointer fields are omitted. Values with no wire form (NaN, ±Inf)
// fail with ErrEncode. If *T implements Unbinder, its UnbindValues method
// is used instead.
func Unbind[T any](ctx context.Context, v *T) (map[string]string, error) {
	if u, ok := any(v).(Unbinder); ok && v != nil {
		start := time.Now()
		out, err := u.UnbindValues()
		emitUnbindComplete(ctx, overrideTypeName[T](), len(out), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	plan, err := getOrBuildBindPlan[T]()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil %s", ErrValue, plan.typeName)
	}

	start := time.Now()
	rv := reflect.ValueOf(v).Elem()
	out := make(map[string]string, len(plan.fields))

	var errs []error
	for _, f := range plan.fields {
		s, ok := f.conv.encode(rv.FieldByIndex(f.index))
		if !ok {
			continue
		}
		if !f.conv.accepts(s) {
			cause := newParseError(f.codec, ErrEncode, nil)
			errs = append(errs, &FieldError{Field: f.name, Key: f.key, Codec: f.codec, Cause: cause})
			continue
		}
		out[f.key] = s
	}

	err = errors.Join(errs...)
	emitUnbindComplete(ctx, plan.typeName, len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func overrideTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// getOrBuildBindPlan returns the cached plan for T, building it on first use.
func getOrBuildBindPlan[T any]() (*bindPlan, error) {
	typ := reflect.TypeFor[T]()

	bindPlansMu.RLock()
	if plan, ok := bindPlans[typ]; ok {
		bindPlansMu.RUnlock()
		return plan, nil
	}
	bindPlansMu.RUnlock()

	bindPlansMu.Lock()
	defer bindPlansMu.Unlock()

	if plan, ok := bindPlans[typ]; ok {
		return plan, nil
	}

	plan, err := buildBindPlan[T](typ)
	if err != nil {
		return nil, err
	}
	bindPlans[typ] = plan
	return plan, nil
}

// buildBindPlan scans T's struct tags and resolves a converter per tagged field.
func buildBindPlan[T any](typ reflect.Type) (*bindPlan, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidTag, typ)
	}

	meta := sentinel.Scan[T]()
	plan := &bindPlan{typeName: meta.TypeName}

	for _, field := range meta.Fields {
		tag, ok := field.Tags[bindTag]
		if !ok || tag == "-" {
			continue
		}
		if !typ.FieldByIndex(field.Index).IsExported() {
			continue
		}

		key, codec, _ := strings.Cut(tag, ",")
		if key == "" {
			key = field.Name
		}
		if codec == "" {
			return nil, fmt.Errorf("%w: field %s has no codec in %q", ErrInvalidTag, field.Name, tag)
		}

		conv, err := converterFor(codec, field.ReflectType)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", ErrInvalidTag, field.Name, err)
		}

		plan.fields = append(plan.fields, bindFieldPlan{
			index: append([]int{}, field.Index...),
			name:  field.Name,
			key:   key,
			codec: codec,
			conv:  conv,
		})
	}

	return plan, nil
}

// converterFor resolves the converter for a codec name and field type.
func converterFor(codec string, t reflect.Type) (fieldConverter, error) {
	if bc, ok := byteCodecs[codec]; ok {
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.Uint8 {
			return fieldConverter{}, unsupportedField(codec, t)
		}
		return bytesConverter(bc), nil
	}

	switch codec {
	case ISODateTime.Name():
		if t == timeType {
			return valueConverter(ISODateTime, nil), nil
		}
	case Int.Name():
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return intConverter(), nil
		}
	case Number.Name():
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			return floatConverter(), nil
		}
	case BigInt.Name():
		if t == bigIntType {
			return valueConverter(BigInt, func(v *big.Int) bool { return v == nil }), nil
		}
	case URL.Name():
		if t == urlType {
			return valueConverter(URL, func(v *url.URL) bool { return v == nil }), nil
		}
	case QueryParams.Name():
		if t == paramsType {
			return valueConverter(QueryParams, nil), nil
		}
	case QueryObject.Name():
		if t == stringMapType {
			return valueConverter(QueryObject, nil), nil
		}
	default:
		return fieldConverter{}, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
	return fieldConverter{}, unsupportedField(codec, t)
}

func unsupportedField(codec string, t reflect.Type) error {
	return fmt.Errorf("codec %s does not support field type %s", codec, t)
}

func bytesConverter(c Codec[string, []byte]) fieldConverter {
	return fieldConverter{
		accepts: c.Accepts,
		decode: func(s string, dst reflect.Value) error {
			b, err := c.Decode(s)
			if err != nil {
				return err
			}
			dst.SetBytes(b)
			return nil
		},
		encode: func(src reflect.Value) (string, bool) {
			return c.Encode(src.Bytes()), true
		},
	}
}

// valueConverter handles fields whose type is exactly the codec's value type.
func valueConverter[V any](c Codec[string, V], isNil func(V) bool) fieldConverter {
	return fieldConverter{
		accepts: c.Accepts,
		decode: func(s string, dst reflect.Value) error {
			v, err := c.Decode(s)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(v))
			return nil
		},
		encode: func(src reflect.Value) (string, bool) {
			v := src.Interface().(V)
			if isNil != nil && isNil(v) {
				return "", false
			}
			return c.Encode(v), true
		},
	}
}

func intConverter() fieldConverter {
	return fieldConverter{
		accepts: Int.Accepts,
		decode: func(s string, dst reflect.Value) error {
			v, err := Int.Decode(s)
			if err != nil {
				return err
			}
			if dst.OverflowInt(v) {
				return newSyntaxError(Int.Name(), ErrRange, nil)
			}
			dst.SetInt(v)
			return nil
		},
		encode: func(src reflect.Value) (string, bool) {
			return Int.Encode(src.Int()), true
		},
	}
}

func floatConverter() fieldConverter {
	return fieldConverter{
		accepts: Number.Accepts,
		decode: func(s string, dst reflect.Value) error {
			v, err := Number.Decode(s)
			if err != nil {
				return err
			}
			if dst.OverflowFloat(v) {
				return newSyntaxError(Number.Name(), ErrRange, nil)
			}
			dst.SetFloat(v)
			return nil
		},
		encode: func(src reflect.Value) (string, bool) {
			return Number.Encode(src.Float()), true
		},
	}
}
