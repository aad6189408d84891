package textcodec

import (
	"errors"
	"fmt"
)

// -- Sentinels --

// ErrBinaryContent is returned by Decode when the buffer has no BOM and a null
// byte appears within the first BinarySniffLength bytes. Detect reports the
// same outcome as Detection.Binary without an error.
var ErrBinaryContent = errors.New("content is binary")

// -- Validation errors --

// UnevenLengthError is returned when a UTF-16 payload has an odd number of bytes.
type UnevenLengthError struct {
	Length int
}

func (e *UnevenLengthError) Error() string {
	return fmt.Sprintf("uneven length byte sequence: %d bytes cannot form 16-bit units", e.Length)
}

func (e *UnevenLengthError) InvalidInput() bool { return true }

// MalformedUTF8Error is returned when bytes are not well-formed UTF-8.
// Offset is the position of the first invalid byte in the original buffer,
// counting any BOM.
type MalformedUTF8Error struct {
	Offset   int
	Encoding Encoding
}

func (e *MalformedUTF8Error) Error() string {
	return fmt.Sprintf("invalid %s sequence at byte %d", e.Encoding, e.Offset)
}

func (e *MalformedUTF8Error) InvalidInput() bool { return true }

// MalformedUTF16Error is returned when 16-bit units do not form valid UTF-16.
// Index is the position of the offending unit after the BOM. Encoding is set
// when the error comes from Detect or Decode.
type MalformedUTF16Error struct {
	Index    int
	Unit     uint16
	Encoding Encoding
	Reason   string
}

func (e *MalformedUTF16Error) Error() string {
	return fmt.Sprintf("invalid UTF-16 sequence at unit %d (0x%04X): %s", e.Index, e.Unit, e.Reason)
}

func (e *MalformedUTF16Error) InvalidInput() bool { return true }

// UnknownEncodingError is returned when an encoding label is not recognised.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown encoding %q (supported: UTF-8, UTF-8-BOM, UTF-16-BE, UTF-16-LE)", e.Name)
}

func (e *UnknownEncodingError) InvalidInput() bool { return true }

// IsInvalidInput reports whether err, or any error it wraps, marks itself as
// invalid input.
func IsInvalidInput(err error) bool {
	var target interface{ InvalidInput() bool }
	return errors.As(err, &target) && target.InvalidInput()
}
