package transcode

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	intPattern    = regexp.MustCompile(`^-?\d+$`)
	numberPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
)

// Int converts between base-10 integer text and int64.
// Leading zeros and "-0" are accepted but not reproduced by Encode.
var Int Codec[string, int64] = delegateCodec[string, int64]{
	name:   "int",
	parse:  parseInt,
	format: formatInt,
}

// Number converts between plain decimal text and float64.
// Exponent notation, "NaN", and "Inf" are rejected. Encode produces the
// shortest decimal that round-trips, without an exponent; NaN and ±Inf
// have no representation.
var Number Codec[string, float64] = delegateCodec[string, float64]{
	name:   "number",
	parse:  parseNumber,
	format: formatNumber,
}

func parseInt(s string) (int64, error) {
	if !intPattern.MatchString(s) {
		return 0, newSyntaxError("int", ErrSyntax, nil)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newSyntaxError("int", ErrRange, err)
		}
		return 0, newSyntaxError("int", ErrSyntax, err)
	}
	return v, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func parseNumber(s string) (float64, error) {
	if !numberPattern.MatchString(s) {
		return 0, newSyntaxError("number", ErrSyntax, nil)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newSyntaxError("number", ErrRange, err)
		}
		return 0, newSyntaxError("number", ErrSyntax, err)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
