package toml

import (
	"bytes"
	"testing"

	"github.com/zoobzio/transcode"
)

type document struct {
	Name   string                   `toml:"name"`
	Digest transcode.HexBytes       `toml:"digest"`
	Blob   transcode.Base64Bytes    `toml:"blob"`
	Token  transcode.Base64URLBytes `toml:"token"`
}

func TestNew(t *testing.T) {
	f := New()
	if f == nil {
		t.Error("New() should return non-nil format")
	}
}

func TestContentType(t *testing.T) {
	f := New()
	if f.ContentType() != "application/toml" {
		t.Errorf("ContentType() = %q, want %q", f.ContentType(), "application/toml")
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

	for _, want := range []string{"48656c6c6f", "AAEC/w==", "--__"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("Marshal() = %s, want it to contain %q", data, want)
		}
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
	if err := f.Unmarshal([]byte("name = [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshalMalformedField(t *testing.T) {
	f := New()

	var v document
	if err := f.Unmarshal([]byte(`digest = "abc"`), &v); err == nil {
		t.Error("Unmarshal(odd hex) should return error")
	}
}
