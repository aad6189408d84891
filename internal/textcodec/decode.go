package textcodec

import "bytes"

// Detection is the outcome of Detect. When Binary is true Text is the zero
// value and the caller keeps the raw bytes.
type Detection struct {
	Text   Text
	Binary bool
}

// Detect classifies data and decodes it when it is text.
//
// A byte order mark commits the buffer to that encoding: UTF-8 BOM, then
// UTF-16 BE, then UTF-16 LE are tried by literal prefix, and a validation
// failure is returned as is. Only a BOM-less buffer is checked with IsBinary
// before it is validated as plain UTF-8.
func Detect(data []byte) (Detection, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM[:]):
		s, err := decodeUTF8(data, UTF8BOMLen, UTF8BOM)
		if err != nil {
			return Detection{}, err
		}
		return Detection{Text: Text{data: s, encoding: UTF8BOM}}, nil

	case bytes.HasPrefix(data, utf16BEBOM[:]):
		s, err := decodeUTF16(data[UTF16BOMLen:], UTF16BE)
		if err != nil {
			return Detection{}, err
		}
		return Detection{Text: Text{data: s, encoding: UTF16BE}}, nil

	case bytes.HasPrefix(data, utf16LEBOM[:]):
		s, err := decodeUTF16(data[UTF16BOMLen:], UTF16LE)
		if err != nil {
			return Detection{}, err
		}
		return Detection{Text: Text{data: s, encoding: UTF16LE}}, nil

	case IsBinary(data):
		return Detection{Binary: true}, nil
	}

	s, err := decodeUTF8(data, 0, UTF8)
	if err != nil {
		return Detection{}, err
	}
	return Detection{Text: Text{data: s, encoding: UTF8}}, nil
}

// Decode is Detect for callers that only accept text: binary content is
// reported as ErrBinaryContent.
func Decode(data []byte) (Text, error) {
	d, err := Detect(data)
	if err != nil {
		return Text{}, err
	}
	if d.Binary {
		return Text{}, ErrBinaryContent
	}
	return d.Text, nil
}

// decodeUTF8 validates data[skip:] and returns it as a string. Error offsets
// are relative to data.
func decodeUTF8(data []byte, skip int, enc Encoding) (string, error) {
	body := data[skip:]
	if offset := invalidUTF8Offset(body); offset >= 0 {
		return "", &MalformedUTF8Error{Offset: skip + offset, Encoding: enc}
	}
	return string(body), nil
}
