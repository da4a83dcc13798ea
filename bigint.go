package transcode

import (
	"math/big"
)

// BigInt converts between base-10 integer text of any size and *big.Int.
// Decode always returns a fresh value. A nil *big.Int encodes as "0".
var BigInt Codec[string, *big.Int] = delegateCodec[string, *big.Int]{
	name:   "bigint",
	parse:  parseBigInt,
	format: formatBigInt,
}

func parseBigInt(s string) (*big.Int, error) {
	if !intPattern.MatchString(s) {
		return nil, newSyntaxError("bigint", ErrSyntax, nil)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, newSyntaxError("bigint", ErrSyntax, nil)
	}
	return v, nil
}

func formatBigInt(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
