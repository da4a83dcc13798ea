package transcode

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// queryPattern admits "" or one or more "key=value" pairs joined by '&',
// each with a non-empty key.
var queryPattern = regexp.MustCompile(`^([^=&]+=[^&]*(&[^=&]+=[^&]*)*)?$`)

// Param is a single decoded query pair.
type Param struct {
	Key   string
	Value string
}

// Params is an insertion-ordered set of query pairs with unique keys.
type Params []Param

// Get returns the value for key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set replaces the value for key in place, or appends a new pair.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// QueryParams converts between form-encoded query text and ordered Params.
// Duplicate keys keep the position of their first occurrence and the value
// of their last.
var QueryParams Codec[string, Params] = delegateCodec[string, Params]{
	name:   "query",
	parse:  parseQueryParams,
	format: formatQueryParams,
}

// QueryObject converts between form-encoded query text and map[string]string.
// Duplicate keys keep their last value. Encode writes keys in sorted order.
var QueryObject Codec[string, map[string]string] = delegateCodec[string, map[string]string]{
	name:   "query-object",
	parse:  parseQueryObject,
	format: formatQueryObject,
}

// splitQuery validates s and yields each unescaped pair in order.
func splitQuery(name, s string, yield func(key, value string)) error {
	if !queryPattern.MatchString(s) {
		return newSyntaxError(name, ErrSyntax, nil)
	}
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, "&") {
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return newSyntaxError(name, ErrSyntax, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return newSyntaxError(name, ErrSyntax, err)
		}
		yield(key, value)
	}
	return nil
}

func parseQueryParams(s string) (Params, error) {
	params := Params{}
	if err := splitQuery("query", s, params.Set); err != nil {
		return nil, err
	}
	return params, nil
}

func formatQueryParams(p Params) string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

func parseQueryObject(s string) (map[string]string, error) {
	obj := make(map[string]string)
	err := splitQuery("query-object", s, func(key, value string) {
		obj[key] = value
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func formatQueryObject(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make(Params, 0, len(keys))
	for _, k := range keys {
		p = append(p, Param{Key: k, Value: m[k]})
	}
	return formatQueryParams(p)
}
