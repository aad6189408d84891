package textcodec

import "unicode/utf8"

// Text is valid Unicode text tagged with the encoding it was decoded from,
// or the encoding it should be written in. The zero value is empty UTF-8.
type Text struct {
	data     string
	encoding Encoding
}

// NewText tags s with enc. s must be valid UTF-8 (no overlong forms, no
// encoded surrogates), otherwise *MalformedUTF8Error is returned.
func NewText(s string, enc Encoding) (Text, error) {
	if !enc.Valid() {
		return Text{}, &UnknownEncodingError{Name: enc.String()}
	}
	if offset := invalidUTF8Offset([]byte(s)); offset >= 0 {
		return Text{}, &MalformedUTF8Error{Offset: offset, Encoding: UTF8}
	}
	return Text{data: s, encoding: enc}, nil
}

// String returns the decoded text.
func (t Text) String() string { return t.data }

// Encoding returns the encoding tag.
func (t Text) Encoding() Encoding { return t.encoding }

// Len returns the length of the text in runes.
func (t Text) Len() int { return utf8.RuneCountInString(t.data) }

// WithEncoding returns a copy of t tagged with enc. An invalid enc leaves the
// tag unchanged.
func (t Text) WithEncoding(enc Encoding) Text {
	if enc.Valid() {
		t.encoding = enc
	}
	return t
}

// invalidUTF8Offset returns the index of the first byte that does not start a
// valid UTF-8 sequence, or -1 when b is well-formed.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
