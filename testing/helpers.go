// Package testing provides test utilities for transcode.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/transcode"
	"go.uber.org/goleak"
)

// Vector is a known byte sequence with its encoding in every byte codec.
type Vector struct {
	Bytes     []byte
	Base64    string
	Base64URL string
	Hex       string
}

// Vectors returns reference encodings, including every padding length and
// both URL-safe substitutions.
func Vectors() []Vector {
	return []Vector{
		{Bytes: []byte{}, Base64: "", Base64URL: "", Hex: ""},
		{Bytes: []byte("a"), Base64: "YQ==", Base64URL: "YQ", Hex: "61"},
		{Bytes: []byte("ab"), Base64: "YWI=", Base64URL: "YWI", Hex: "6162"},
		{Bytes: []byte("abc"), Base64: "YWJj", Base64URL: "YWJj", Hex: "616263"},
		{Bytes: []byte("Hello"), Base64: "SGVsbG8=", Base64URL: "SGVsbG8", Hex: "48656c6c6f"},
		{Bytes: []byte("Hello World!"), Base64: "SGVsbG8gV29ybGQh", Base64URL: "SGVsbG8gV29ybGQh", Hex: "48656c6c6f20576f726c6421"},
		{Bytes: []byte{0, 1, 2, 255}, Base64: "AAEC/w==", Base64URL: "AAEC_w", Hex: "000102ff"},
		{Bytes: []byte{251, 239}, Base64: "++8=", Base64URL: "--8", Hex: "fbef"},
		{Bytes: []byte{255, 255}, Base64: "//8=", Base64URL: "__8", Hex: "ffff"},
	}
}

// Encoded returns the vector's encoding for the named codec.
func (v Vector) Encoded(codec string) string {
	switch codec {
	case "base64":
		return v.Base64
	case "base64url":
		return v.Base64URL
	case "hex":
		return v.Hex
	}
	return ""
}

// AssertRoundTrip checks that b survives Encode then Decode, and that the
// encoding survives Decode then Encode unchanged.
func AssertRoundTrip(tb testing.TB, c transcode.Codec[string, []byte], b []byte) {
	tb.Helper()

	encoded := c.Encode(b)
	require.True(tb, c.Accepts(encoded), "%s: Accepts(Encode(%v)) = false for %q", c.Name(), b, encoded)

	decoded, err := c.Decode(encoded)
	require.NoError(tb, err, "%s: Decode(%q)", c.Name(), encoded)
	assert.Equal(tb, len(b), len(decoded), "%s: decoded length", c.Name())
	if len(b) > 0 {
		assert.Equal(tb, b, decoded, "%s: Decode(Encode(b))", c.Name())
	}
	assert.Equal(tb, encoded, c.Encode(decoded), "%s: Encode(Decode(t))", c.Name())
}

// AssertClosure checks that Accepts and Decode agree on every input.
// Accepted inputs must also re-encode to themselves; Hex input is compared
// in lowercase, its canonical form.
func AssertClosure(tb testing.TB, c transcode.Codec[string, []byte], inputs ...string) {
	tb.Helper()

	for _, in := range inputs {
		decoded, err := c.Decode(in)
		accepted := c.Accepts(in)
		if !assert.Equal(tb, err == nil, accepted, "%s: Accepts(%q) = %v, Decode error = %v", c.Name(), in, accepted, err) {
			continue
		}
		if accepted {
			assert.Equal(tb, canonical(c, in), c.Encode(decoded), "%s: Encode(Decode(%q))", c.Name(), in)
		} else {
			assert.Nil(tb, decoded, "%s: Decode(%q) returned partial output", c.Name(), in)
			assert.ErrorIs(tb, err, transcode.ErrFormat)
		}
	}
}

// AssertRejects checks that Decode fails on input with the given sentinel.
func AssertRejects(tb testing.TB, c transcode.Codec[string, []byte], input string, sentinel error) {
	tb.Helper()

	_, err := c.Decode(input)
	require.Error(tb, err, "%s: Decode(%q) should fail", c.Name(), input)
	assert.False(tb, c.Accepts(input), "%s: Accepts(%q) should be false", c.Name(), input)

	var fe *transcode.FormatError
	require.True(tb, errors.As(err, &fe), "%s: Decode(%q) error %T is not *FormatError", c.Name(), input, err)
	assert.ErrorIs(tb, err, sentinel)
}

// AssertNoLeaks fails tb if goroutines started after the call are still
// running when the test finishes. Codecs never start goroutines.
func AssertNoLeaks(tb testing.TB) {
	tb.Helper()

	ignore := goleak.IgnoreCurrent()
	tb.Cleanup(func() {
		goleak.VerifyNone(tb, ignore)
	})
}

// canonical returns the form Encode produces for an accepted input.
func canonical(c transcode.Codec[string, []byte], in string) string {
	if c.Name() == transcode.Hex.Name() {
		return strings.ToLower(in)
	}
	return in
}
