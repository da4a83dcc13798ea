// Package msgpack provides a MessagePack format implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/transcode"
)

// msgpackFormat implements transcode.Format for MessagePack.
type msgpackFormat struct{}

// New returns a MessagePack format.
func New() transcode.Format {
	return &msgpackFormat{}
}

// ContentType returns the MIME type for MessagePack.
func (f *msgpackFormat) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (f *msgpackFormat) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (f *msgpackFormat) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
