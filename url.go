package transcode

import (
	"errors"
	"net/url"
	"strings"
)

var (
	errRelativeURL = errors.New("url has no scheme")
	errMissingHost = errors.New("url has no host")
	errEmptyURL    = errors.New("url has no host or path")
)

// hostSchemes lists hierarchical schemes whose URLs are meaningless without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// URL converts between absolute URL text and *url.URL.
//
// Relative and protocol-relative references are rejected. Decoding
// normalizes the host to lowercase and an empty path under a host to "/",
// so "https://Example.com" re-encodes as "https://example.com/".
// A nil *url.URL encodes as "".
var URL Codec[string, *url.URL] = delegateCodec[string, *url.URL]{
	name:   "url",
	parse:  parseURL,
	format: formatURL,
}

func parseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, newSyntaxError("url", ErrSyntax, err)
	}
	if u.Scheme == "" {
		return nil, newSyntaxError("url", ErrSyntax, errRelativeURL)
	}
	if hostSchemes[u.Scheme] && u.Host == "" {
		return nil, newSyntaxError("url", ErrSyntax, errMissingHost)
	}
	if u.Opaque == "" && u.Host == "" && u.Path == "" {
		return nil, newSyntaxError("url", ErrSyntax, errEmptyURL)
	}
	u.Host = strings.ToLower(u.Host)
	if u.Host != "" && u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

func formatURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}
