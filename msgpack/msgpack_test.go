package msgpack

import (
	"bytes"
	"testing"

	"github.com/zoobzio/transcode"
)

type document struct {
	Name   string                   `msgpack:"name"`
	Digest transcode.HexBytes       `msgpack:"digest"`
	Blob   transcode.Base64Bytes    `msgpack:"blob"`
	Token  transcode.Base64URLBytes `msgpack:"token"`
}

func TestNew(t *testing.T) {
	f := New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := New()
	if f.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	f := New()

	original := document{
		Name:   "hello",
		Digest: transcode.HexBytes("Hello"),
		Blob:   transcode.Base64Bytes{0, 1, 2, 255},
		Token:  transcode.Base64URLBytes{251, 239, 255},
	}

	data, err := f.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored document
	if err := f.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Name != original.Name {
		t.Errorf("Name = %q, want %q", restored.Name, original.Name)
	}
	if !bytes.Equal(restored.Digest, original.Digest) {
		t.Errorf("Digest = %v, want %v", restored.Digest, original.Digest)
	}
	if !bytes.Equal(restored.Blob, original.Blob) {
		t.Errorf("Blob = %v, want %v", restored.Blob, original.Blob)
	}
	if !bytes.Equal(restored.Token, original.Token) {
		t.Errorf("Token = %v, want %v", restored.Token, original.Token)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	f := New()

	var v document
	err := f.Unmarshal([]byte("\xc1"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
