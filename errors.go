package transcode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrFormat matches every *FormatError regardless of the rule it reports.
	ErrFormat = errors.New("invalid format")

	// ErrInvalidCharacter indicates a character outside the codec's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength indicates an input length no valid encoding can have.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidPadding indicates a misplaced, disallowed, or miscounted '='.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrTrailingBits indicates non-zero bits after the last full byte.
	ErrTrailingBits = errors.New("non-zero trailing bits")

	// ErrSyntax indicates input rejected by a codec's acceptance predicate.
	ErrSyntax = errors.New("syntax error")

	// ErrRange indicates a syntactically valid value outside the representable range.
	ErrRange = errors.New("value out of range")

	// ErrValue indicates a decoded or supplied value failed a schema value check.
	ErrValue = errors.New("invalid value")

	// ErrDecode indicates a schema failed to decode wire input.
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates a schema failed to encode a value.
	ErrEncode = errors.New("encode failed")

	// ErrUnknownCodec indicates a codec name with no registered codec.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrInvalidTag indicates a struct tag names an unknown codec or an unsupported field type.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnknownAlgorithm indicates a digest algorithm that is not supported.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
)

// FormatError is the single failure kind returned by Codec.Decode.
// It wraps a sentinel error with the codec name and, where the violation is
// positional, the byte offset and character that triggered it.
type FormatError struct {
	Codec  string // Codec name (e.g., "base64")
	Err    error  // Underlying sentinel error (ErrInvalidCharacter, etc.)
	Offset int    // Byte offset of the violation, -1 when not positional
	Char   byte   // Offending character, 0 when not applicable
	Length int    // Input length, reported for ErrInvalidLength
	Cause  error  // Original error from a delegated parser, if any
}

func (e *FormatError) Error() string {
	switch {
	case e.Char != 0 && e.Offset >= 0:
		return fmt.Sprintf("%s: %s %q at offset %d", e.Codec, e.Err.Error(), e.Char, e.Offset)
	case errors.Is(e.Err, ErrInvalidLength):
		return fmt.Sprintf("%s: %s %d", e.Codec, e.Err.Error(), e.Length)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: %s at offset %d", e.Codec, e.Err.Error(), e.Offset)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Codec, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Codec, e.Err.Error())
}

func (e *FormatError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Is reports true for ErrFormat so callers can match any format failure.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ParseError represents a schema-level decode, encode, or value check failure.
type ParseError struct {
	Codec string // Codec name
	Err   error  // Underlying sentinel error (ErrDecode, ErrEncode, ErrValue)
	Cause error  // Original error, typically a *FormatError
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Codec, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Codec, e.Err.Error())
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// FieldError represents a binding failure on a single struct field.
type FieldError struct {
	Field string // Go field name
	Key   string // Wire key
	Codec string // Codec named by the field's tag
	Cause error  // Original error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s (key %q, codec %s): %v", e.Field, e.Key, e.Codec, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// newFormatError creates a positional FormatError.
func newFormatError(codec string, sentinel error, offset int, char byte) error {
	return &FormatError{
		Codec:  codec,
		Err:    sentinel,
		Offset: offset,
		Char:   char,
	}
}

// newLengthError creates a FormatError for an impossible input length.
func newLengthError(codec string, length int) error {
	return &FormatError{
		Codec:  codec,
		Err:    ErrInvalidLength,
		Offset: -1,
		Length: length,
	}
}

// newSyntaxError creates a FormatError for predicate rejections and
// failures reported by a delegated parser.
func newSyntaxError(codec string, sentinel, cause error) error {
	return &FormatError{
		Codec:  codec,
		Err:    sentinel,
		Offset: -1,
		Cause:  cause,
	}
}

// newParseError creates a ParseError for schema failures.
func newParseError(codec string, sentinel, cause error) error {
	return &ParseError{
		Codec: codec,
		Err:   sentinel,
		Cause: cause,
	}
}
