package transcode

const hexDigits = "0123456789abcdef"

// hexValues maps ASCII hex digits of either case to their nibble value.
var hexValues = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(hexDigits); i++ {
		t[hexDigits[i]] = byte(i)
	}
	for c := byte('A'); c <= 'F'; c++ {
		t[c] = c - 'A' + 10
	}
	return t
}()

// Hex is the codec between hexadecimal text and bytes.
var Hex Codec[string, []byte] = HexCodec{}

// HexCodec converts between hexadecimal text and bytes.
// Decoding is case-insensitive; encoding always produces lowercase digits
// with no prefix.
type HexCodec struct{}

// Name returns "hex".
func (HexCodec) Name() string {
	return "hex"
}

// Accepts reports whether s is an even-length string of hex digits.
func (HexCodec) Accepts(s string) bool {
	_, err := scanHex(s, nil)
	return err == nil
}

// Decode converts hex text to bytes.
func (HexCodec) Decode(s string) ([]byte, error) {
	dst := make([]byte, len(s)/2)
	if _, err := scanHex(s, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Encode converts bytes to lowercase hex text.
func (HexCodec) Encode(b []byte) string {
	buf := make([]byte, len(b)*2)
	for i, v := range b {
		buf[i*2] = hexDigits[v>>4]
		buf[i*2+1] = hexDigits[v&0x0F]
	}
	return string(buf)
}

// scanHex validates s and, when dst is non-nil, writes the decoded bytes into it.
func scanHex(s string, dst []byte) (int, error) {
	if len(s)%2 != 0 {
		return 0, newLengthError("hex", len(s))
	}
	for i := 0; i < len(s); i += 2 {
		hi := hexValues[s[i]]
		if hi == invalidSymbol {
			return 0, newFormatError("hex", ErrInvalidCharacter, i, s[i])
		}
		lo := hexValues[s[i+1]]
		if lo == invalidSymbol {
			return 0, newFormatError("hex", ErrInvalidCharacter, i+1, s[i+1])
		}
		if dst != nil {
			dst[i/2] = hi<<4 | lo
		}
	}
	return len(s) / 2, nil
}
