// Package toml provides a TOML format implementation.
package toml

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/zoobzio/transcode"
)

// tomlFormat implements transcode.Format for TOML.
type tomlFormat struct{}

// New returns a TOML format.
func New() transcode.Format {
	return &tomlFormat{}
}

// ContentType returns the MIME type for TOML.
func (f *tomlFormat) ContentType() string {
	return "application/toml"
}

// Marshal encodes v as TOML. v must be a struct or a map.
func (f *tomlFormat) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// Unmarshal decodes TOML data into v.
func (f *tomlFormat) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
