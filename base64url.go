package transcode

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var urlRadix = newRadix64("base64url", base64URLAlphabet, false)

// Base64URL is the URL and filename safe codec between unpadded Base64 text and bytes.
var Base64URL Codec[string, []byte] = Base64URLCodec{}

// Base64URLCodec converts between unpadded URL-safe Base64 text and bytes.
//
// The alphabet substitutes '-' for '+' and '_' for '/'. Padding is never
// accepted and never produced; the decoder derives it from the input length
// (remainder 2 stands for two '=', remainder 3 for one, remainder 1 is invalid).
type Base64URLCodec struct{}

// Name returns "base64url".
func (Base64URLCodec) Name() string {
	return urlRadix.name
}

// Accepts reports whether s is canonical unpadded URL-safe Base64.
func (Base64URLCodec) Accepts(s string) bool {
	return urlRadix.valid(s)
}

// Decode converts unpadded URL-safe Base64 text to bytes.
// Any '+', '/', or '=' fails with a *FormatError naming its offset.
func (Base64URLCodec) Decode(s string) ([]byte, error) {
	return urlRadix.decodeString(s)
}

// Encode converts bytes to unpadded URL-safe Base64 text.
func (Base64URLCodec) Encode(b []byte) string {
	return urlRadix.encodeToString(b)
}
