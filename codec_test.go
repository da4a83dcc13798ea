package transcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// upper is a user-defined codec: uppercase ASCII letters to lowercase text.
var upper = Func("upper",
	func(s string) bool {
		return s != "" && strings.ToUpper(s) == s && strings.Trim(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") == ""
	},
	func(s string) (string, error) { return strings.ToLower(s), nil },
	strings.ToUpper,
)

func TestFunc(t *testing.T) {
	if upper.Name() != "upper" {
		t.Errorf("Name() = %q, want %q", upper.Name(), "upper")
	}

	got, err := upper.Decode("ABC")
	if err != nil {
		t.Fatalf("Decode(ABC) error: %v", err)
	}
	if got != "abc" {
		t.Errorf("Decode(ABC) = %q, want %q", got, "abc")
	}
	if enc := upper.Encode(got); enc != "ABC" {
		t.Errorf("Encode(abc) = %q, want %q", enc, "ABC")
	}
}

func TestFunc_Rejected(t *testing.T) {
	for _, in := range []string{"", "abc", "AB1"} {
		if upper.Accepts(in) {
			t.Errorf("Accepts(%q) = true, want false", in)
		}
		_, err := upper.Decode(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Decode(%q) error = %v, want ErrSyntax", in, err)
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Decode(%q) error should match ErrFormat", in)
		}
	}
}

func TestFunc_WrapsDecodeError(t *testing.T) {
	errBoom := errors.New("boom")
	c := Func("boom",
		func(string) bool { return true },
		func(string) (int, error) { return 0, errBoom },
		func(int) string { return "" },
	)

	_, err := c.Decode("x")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Decode() error is %T, want *FormatError", err)
	}
	if fe.Cause != errBoom {
		t.Errorf("FormatError.Cause = %v, want %v", fe.Cause, errBoom)
	}
	if fe.Codec != "boom" {
		t.Errorf("FormatError.Codec = %q, want %q", fe.Codec, "boom")
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("Decode() error should match its cause, got %v", err)
	}
}

func TestFunc_PassesFormatError(t *testing.T) {
	c := Func("hexish",
		func(string) bool { return true },
		Hex.Decode,
		Hex.Encode,
	)

	_, err := c.Decode("0g")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("Decode(0g) error = %v, want ErrInvalidCharacter", err)
	}
}

func TestFunc_PassesWrappedFormatError(t *testing.T) {
	c := Func("checksum",
		func(string) bool { return true },
		func(s string) ([]byte, error) {
			b, err := Hex.Decode(s)
			if err != nil {
				return nil, fmt.Errorf("checksum: %w", err)
			}
			return b, nil
		},
		Hex.Encode,
	)

	_, err := c.Decode("abc")
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Decode(abc) error = %v, want ErrInvalidLength", err)
	}
	if errors.Is(err, ErrSyntax) {
		t.Errorf("Decode(abc) should not be rewrapped as ErrSyntax, got %v", err)
	}
}

func TestFunc_WithSchema(t *testing.T) {
	s := Define(upper)
	ctx := context.Background()

	if _, err := s.Parse(ctx, "lower"); !errors.Is(err, ErrDecode) {
		t.Errorf("Parse(lower) error = %v, want ErrDecode", err)
	}
	if _, err := s.Encode(ctx, "a1"); !errors.Is(err, ErrEncode) {
		t.Errorf("Encode(a1) error = %v, want ErrEncode", err)
	}
}
