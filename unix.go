package transcode

import (
	"errors"
	"math"
	"time"
)

// maxUnixSeconds bounds the instants an ECMAScript Date can represent (±8.64e15 ms).
const maxUnixSeconds = 8.64e12

var errNotFinite = errors.New("value is not finite")

// UnixSeconds converts between a Unix timestamp in seconds and time.Time.
//
// Fractional seconds are honored to the millisecond on decode. Encoding
// floors to whole seconds, so sub-second precision does not survive a
// round trip. NaN, ±Inf, and values beyond the representable range fail.
var UnixSeconds Codec[float64, time.Time] = delegateCodec[float64, time.Time]{
	name:   "unix",
	parse:  parseUnixSeconds,
	format: formatUnixSeconds,
}

func parseUnixSeconds(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, newSyntaxError("unix", ErrSyntax, errNotFinite)
	}
	if math.Abs(v) > maxUnixSeconds {
		return time.Time{}, newSyntaxError("unix", ErrRange, nil)
	}
	ms := math.Trunc(v * 1000)
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func formatUnixSeconds(t time.Time) float64 {
	return float64(t.Unix())
}
