package transcode

import (
	"regexp"
	"time"
)

// isoLayout renders instants the way ECMAScript's toISOString does.
const isoLayout = "2006-01-02T15:04:05.000Z"

// dateTimePattern admits seconds precision or finer, a '.' fraction
// separator, and a "Z" or "±hh:mm" designator. time.Parse alone also
// accepts a ',' separator.
var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)

// ISODateTime converts between RFC 3339 date-time text and time.Time.
//
// Input must carry a time zone designator ("Z" or "±hh:mm"); fractional
// seconds of any precision are accepted. Encoding is lossy: the result is
// always UTC with millisecond precision, so "2024-01-15T10:30:00+05:30"
// re-encodes as "2024-01-15T05:00:00.000Z".
var ISODateTime Codec[string, time.Time] = delegateCodec[string, time.Time]{
	name:   "datetime",
	parse:  parseISODateTime,
	format: formatISODateTime,
}

func parseISODateTime(s string) (time.Time, error) {
	if !dateTimePattern.MatchString(s) {
		return time.Time{}, newSyntaxError("datetime", ErrSyntax, nil)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, newSyntaxError("datetime", ErrSyntax, err)
	}
	return t, nil
}

func formatISODateTime(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(isoLayout)
}
