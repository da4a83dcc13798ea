package transcode

import (
	"fmt"
	"reflect"
	"sync"
)

// byteCodecs holds the built-in byte transcoders by name.
var byteCodecs = map[string]Codec[string, []byte]{
	"base64":    Base64,
	"base64url": Base64URL,
	"hex":       Hex,
}

// Lookup returns the byte codec registered under name ("base64", "base64url", or "hex").
func Lookup(name string) (Codec[string, []byte], error) {
	c, ok := byteCodecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// registryKey combines codec name and type parameters for cache lookup.
type registryKey struct {
	name  string
	wire  reflect.Type
	value reflect.Type
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached schema or defines a new one.
// Schemas are cached by codec name and type parameters; options only apply
// when the schema is first defined.
func Use[W, V any](codec Codec[W, V], opts ...SchemaOption[V]) *Schema[W, V] {
	key := registryKey{
		name:  codec.Name(),
		wire:  reflect.TypeFor[W](),
		value: reflect.TypeFor[V](),
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Schema[W, V])
	}
	registryMu.RUnlock()

	// Slow path: define and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Schema[W, V])
	}

	schema := Define(codec, opts...)
	registry[key] = schema
	return schema
}

// Reset clears the schema registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
