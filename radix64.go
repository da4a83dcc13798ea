package transcode

// invalidSymbol marks bytes outside an alphabet in a lookup table.
const invalidSymbol = 0xFF

const padChar = '='

// radix64 is the 6-bit packing core shared by Base64 and Base64URL.
// Tables are built once and never mutated.
type radix64 struct {
	name   string
	encode string
	decode [256]byte
	padded bool
}

func newRadix64(name, alphabet string, padded bool) *radix64 {
	if len(alphabet) != 64 {
		panic("transcode: radix64 alphabet must have 64 symbols")
	}
	r := &radix64{
		name:   name,
		encode: alphabet,
		padded: padded,
	}
	for i := range r.decode {
		r.decode[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		r.decode[alphabet[i]] = byte(i)
	}
	return r
}

// encodedLen returns the length of the encoding of n bytes.
func (r *radix64) encodedLen(n int) int {
	if r.padded {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// decodedLen returns an upper bound on the decoded size of s.
func decodedLen(s string) int {
	symbols := len(s)
	for symbols > 0 && s[symbols-1] == padChar {
		symbols--
	}
	return symbols * 6 / 8
}

func (r *radix64) encodeToString(src []byte) string {
	buf := make([]byte, r.encodedLen(len(src)))

	di, si := 0, 0
	for n := len(src) / 3 * 3; si < n; si += 3 {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		buf[di+0] = r.encode[val>>18&0x3F]
		buf[di+1] = r.encode[val>>12&0x3F]
		buf[di+2] = r.encode[val>>6&0x3F]
		buf[di+3] = r.encode[val&0x3F]
		di += 4
	}

	remain := len(src) - si
	if remain == 0 {
		return string(buf)
	}

	val := uint(src[si]) << 16
	if remain == 2 {
		val |= uint(src[si+1]) << 8
	}
	buf[di+0] = r.encode[val>>18&0x3F]
	buf[di+1] = r.encode[val>>12&0x3F]

	switch remain {
	case 2:
		buf[di+2] = r.encode[val>>6&0x3F]
		if r.padded {
			buf[di+3] = padChar
		}
	case 1:
		if r.padded {
			buf[di+2] = padChar
			buf[di+3] = padChar
		}
	}
	return string(buf)
}

// scan validates s and, when dst is non-nil, writes the decoded bytes into it.
// It returns the number of decoded bytes. Validation and decoding share this
// one pass, so Accepts and Decode cannot disagree.
func (r *radix64) scan(s string, dst []byte) (int, error) {
	symbols := len(s)
	for symbols > 0 && s[symbols-1] == padChar {
		symbols--
	}
	pad := len(s) - symbols

	var acc, bits uint
	n := 0
	for i := 0; i < symbols; i++ {
		c := s[i]
		v := r.decode[c]
		if v == invalidSymbol {
			if c == padChar && r.padded {
				return 0, newFormatError(r.name, ErrInvalidPadding, i, c)
			}
			return 0, newFormatError(r.name, ErrInvalidCharacter, i, c)
		}
		acc = acc<<6 | uint(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			if dst != nil {
				dst[n] = byte(acc >> bits)
			}
			n++
			acc &= 1<<bits - 1
		}
	}

	switch {
	case pad > 0 && !r.padded:
		return 0, newFormatError(r.name, ErrInvalidPadding, symbols, padChar)
	case pad > 2:
		return 0, newFormatError(r.name, ErrInvalidPadding, symbols+2, padChar)
	case symbols%4 == 1:
		return 0, newLengthError(r.name, len(s))
	case r.padded && len(s)%4 != 0:
		return 0, newLengthError(r.name, len(s))
	case acc != 0:
		return 0, newFormatError(r.name, ErrTrailingBits, symbols-1, s[symbols-1])
	}
	return n, nil
}

func (r *radix64) decodeString(s string) ([]byte, error) {
	dst := make([]byte, decodedLen(s))
	n, err := r.scan(s, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func (r *radix64) valid(s string) bool {
	_, err := r.scan(s, nil)
	return err == nil
}
