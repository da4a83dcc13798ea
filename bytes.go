package transcode

import "encoding"

// HexBytes is a byte slice whose text form is lowercase hex.
// Use it for struct fields that must travel through JSON, XML, or YAML
// in hex form.
type HexBytes []byte

// Base64Bytes is a byte slice whose text form is padded standard Base64.
type Base64Bytes []byte

// Base64URLBytes is a byte slice whose text form is unpadded URL-safe Base64.
type Base64URLBytes []byte

var (
	_ encoding.TextMarshaler   = HexBytes(nil)
	_ encoding.TextUnmarshaler = (*HexBytes)(nil)
	_ encoding.TextMarshaler   = Base64Bytes(nil)
	_ encoding.TextUnmarshaler = (*Base64Bytes)(nil)
	_ encoding.TextMarshaler   = Base64URLBytes(nil)
	_ encoding.TextUnmarshaler = (*Base64URLBytes)(nil)
)

func (b HexBytes) String() string { return Hex.Encode(b) }

func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(Hex.Encode(b)), nil
}

func (b *HexBytes) UnmarshalText(text []byte) error {
	return unmarshalBytes(Hex, text, (*[]byte)(b))
}

func (b Base64Bytes) String() string { return Base64.Encode(b) }

func (b Base64Bytes) MarshalText() ([]byte, error) {
	return []byte(Base64.Encode(b)), nil
}

func (b *Base64Bytes) UnmarshalText(text []byte) error {
	return unmarshalBytes(Base64, text, (*[]byte)(b))
}

func (b Base64URLBytes) String() string { return Base64URL.Encode(b) }

func (b Base64URLBytes) MarshalText() ([]byte, error) {
	return []byte(Base64URL.Encode(b)), nil
}

func (b *Base64URLBytes) UnmarshalText(text []byte) error {
	return unmarshalBytes(Base64URL, text, (*[]byte)(b))
}

// unmarshalBytes decodes text into dst, leaving dst untouched on failure.
func unmarshalBytes(c Codec[string, []byte], text []byte, dst *[]byte) error {
	decoded, err := c.Decode(string(text))
	if err != nil {
		return err
	}
	*dst = decoded
	return nil
}
