package transcode

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var stdRadix = newRadix64("base64", base64Alphabet, true)

// Base64 is the standard RFC 4648 codec between padded Base64 text and bytes.
var Base64 Codec[string, []byte] = Base64Codec{}

// Base64Codec converts between standard padded Base64 text and bytes.
//
// Accepted text uses the alphabet A-Z a-z 0-9 + / with exactly the padding a
// canonical encoding of its byte length carries: the length is a multiple of
// four, at most two trailing '=' appear, and the unused bits of the final
// symbol are zero. Every accepted text re-encodes to itself.
type Base64Codec struct{}

// Name returns "base64".
func (Base64Codec) Name() string {
	return stdRadix.name
}

// Accepts reports whether s is canonical padded Base64.
func (Base64Codec) Accepts(s string) bool {
	return stdRadix.valid(s)
}

// Decode converts padded Base64 text to bytes.
func (Base64Codec) Decode(s string) ([]byte, error) {
	return stdRadix.decodeString(s)
}

// Encode converts bytes to padded Base64 text. The empty slice encodes to "".
func (Base64Codec) Encode(b []byte) string {
	return stdRadix.encodeToString(b)
}
