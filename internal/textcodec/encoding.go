// Package textcodec detects, validates, decodes and re-encodes text buffers.
//
// Four encodings are recognised: UTF-8, UTF-8 with a byte order mark, and
// UTF-16 in either byte order (always BOM-prefixed). Anything else is either
// classified as binary or rejected with a validation error. Every recognised
// buffer round-trips: Encode(Decode(b)) reproduces b exactly.
//
// All functions are pure and safe for concurrent use on independent buffers.
package textcodec

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Encoding identifies one of the supported text encodings.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16BE
	UTF16LE
)

var encodingLabels = [...]string{
	UTF8:    "UTF-8",
	UTF8BOM: "UTF-8-BOM",
	UTF16BE: "UTF-16-BE",
	UTF16LE: "UTF-16-LE",
}

// Encodings lists every supported encoding.
func Encodings() []Encoding {
	return []Encoding{UTF8, UTF8BOM, UTF16BE, UTF16LE}
}

// String returns the display label, e.g. "UTF-16-LE".
func (e Encoding) String() string {
	if int(e) < len(encodingLabels) {
		return encodingLabels[e]
	}
	return "Encoding(" + strconv.Itoa(int(e)) + ")"
}

// Valid reports whether e is one of the supported encodings.
func (e Encoding) Valid() bool {
	return int(e) < len(encodingLabels)
}

// BOM returns the byte order mark written before text in this encoding,
// or nil for plain UTF-8.
func (e Encoding) BOM() []byte {
	switch e {
	case UTF8BOM:
		return BOMUTF8()
	case UTF16BE:
		return BOMUTF16BE()
	case UTF16LE:
		return BOMUTF16LE()
	default:
		return nil
	}
}

// byteOrder returns the unit byte order for UTF-16 encodings.
func (e Encoding) byteOrder() (binary.ByteOrder, bool) {
	switch e {
	case UTF16BE:
		return binary.BigEndian, true
	case UTF16LE:
		return binary.LittleEndian, true
	default:
		return nil, false
	}
}

// MarshalText implements encoding.TextMarshaler using the display label.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &UnknownEncodingError{Name: e.String()}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see ParseEncoding.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEncoding resolves a label such as "UTF-16-LE", "utf16le" or "utf-8-bom".
// Matching ignores case, dashes and underscores.
func ParseEncoding(name string) (Encoding, error) {
	key := normaliseLabel(name)
	for _, e := range Encodings() {
		if normaliseLabel(e.String()) == key {
			return e, nil
		}
	}
	return 0, &UnknownEncodingError{Name: name}
}

func normaliseLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
