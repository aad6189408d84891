package textcodec

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encode returns the bytes of t in its encoding, BOM included for every
// encoding except plain UTF-8. For text produced by Decode the result equals
// the decoded input.
func Encode(t Text) []byte {
	switch t.encoding {
	case UTF8BOM:
		out := make([]byte, 0, UTF8BOMLen+len(t.data))
		out = append(out, utf8BOM[:]...)
		return append(out, t.data...)
	case UTF16BE:
		return encodeUTF16(t.data, utf16BEBOM[:], unicode.BigEndian)
	case UTF16LE:
		return encodeUTF16(t.data, utf16LEBOM[:], unicode.LittleEndian)
	default:
		return []byte(t.data)
	}
}

// EncodeString validates s and encodes it as enc.
func EncodeString(s string, enc Encoding) ([]byte, error) {
	t, err := NewText(s, enc)
	if err != nil {
		return nil, err
	}
	return Encode(t), nil
}

// encodeUTF16 writes bom followed by the UTF-16 units of s in the given order.
// The BOM comes from the catalog, so the transformer runs with IgnoreBOM.
func encodeUTF16(s string, bom []byte, order unicode.Endianness) []byte {
	out := make([]byte, 0, len(bom)+2*len(s))
	out = append(out, bom...)
	if s == "" {
		return out
	}

	encoder := unicode.UTF16(order, unicode.IgnoreBOM).NewEncoder()
	// The encoder only fails on invalid UTF-8, which Text never holds.
	body, _, _ := transform.Bytes(encoder, []byte(s))
	return append(out, body...)
}
