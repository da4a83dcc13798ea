// Package transcode provides bidirectional, validating codecs between wire
// text and typed values.
//
// A Codec pairs an acceptance predicate with a decode/encode pair. Decode
// fails with a *FormatError exactly when Accepts reports false, and every
// value Encode produces is accepted by the same codec.
//
// # Byte Codecs
//
// Three codecs map text to []byte:
//
//   - Base64: RFC 4648 standard alphabet, padded ("SGVsbG8=")
//   - Base64URL: URL and filename safe alphabet, unpadded ("SGVsbG8")
//   - Hex: case-insensitive input, lowercase output ("48656c6c6f")
//
// Decoding is strict. Base64 rejects missing or misplaced padding and
// non-zero trailing bits, Base64URL rejects any '=', and Hex rejects odd
// lengths. Encode(Decode(t)) == t holds for every accepted Base64 and
// Base64URL text; Hex holds it up to case, re-encoding "CAFE" as "cafe".
//
//	b, err := transcode.Hex.Decode("cafe")
//	s := transcode.Base64URL.Encode(b) // "yv4"
//
// # Scalar Codecs
//
//   - ISODateTime: RFC 3339 text and time.Time, encoded as UTC milliseconds
//   - UnixSeconds: float64 seconds and time.Time
//   - Int, Number, BigInt: decimal text and int64, float64, *big.Int
//   - URL: absolute URL text and *url.URL
//   - QueryParams, QueryObject: form-encoded text and Params or map[string]string
//
// Scalar codecs may normalize, so their round trips are value-preserving
// rather than text-preserving.
//
// # Schemas
//
// Define wraps a codec with Parse/Encode, their Safe variants that return a
// Result, ParseAll, and an optional value check:
//
//	digest := transcode.Define(transcode.Hex, transcode.WithValueCheck(func(b []byte) error {
//	    if len(b) != 32 {
//	        return errors.New("want 32 bytes")
//	    }
//	    return nil
//	}))
//	sum, err := digest.Parse(ctx, header)
//
// Use returns a cached schema per codec and type parameters.
//
// # Struct Binding
//
// Bind and Unbind move tagged struct fields to and from key/value maps:
//
//	type Request struct {
//	    Cursor []byte    `transcode:"cursor,base64url"`
//	    Since  time.Time `transcode:"since,datetime"`
//	    Limit  int       `transcode:"limit,int"`
//	}
//
//	req, err := transcode.Bind[Request](ctx, values)
//
// Types can bypass reflection by implementing Binder or Unbinder.
//
// # Formats
//
// The following Format implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - toml - TOML encoding (application/toml)
//
// HexBytes, Base64Bytes, and Base64URLBytes carry their codec's wire form
// through any format that honors encoding.TextMarshaler.
//
// # Digests
//
// Fingerprint renders a SHA-2, SHA-3, BLAKE2b, or XXH64 digest through a
// byte codec; VerifyFingerprint checks one in constant time.
//
// # Observability
//
// Schema and binding operations emit capitan signals (SignalDecodeComplete,
// SignalBindComplete, ...) carrying the codec or type name, size, duration,
// and error.
package transcode

// Format provides content-type aware marshaling of whole documents.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
