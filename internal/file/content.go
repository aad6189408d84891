package file

import (
	"bytes"
	"io"

	"github.com/Cyclone1070/textenc/internal/textcodec"
)

// Content is what a File holds: either decoded text or opaque bytes.
// The set of variants is closed; use a type switch to handle each one.
type Content interface {
	io.WriterTo

	// Bytes returns exactly what is persisted on save.
	Bytes() []byte

	isContent()
}

// EncodedContent is text that decoded cleanly in one of the supported encodings.
type EncodedContent struct {
	Text textcodec.Text
}

func (EncodedContent) isContent() {}

// Bytes re-encodes the text in its encoding, BOM included.
func (c EncodedContent) Bytes() []byte {
	return textcodec.Encode(c.Text)
}

func (c EncodedContent) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(c.Bytes()).WriteTo(w)
}

// BinaryContent is kept as raw bytes and written back verbatim.
// Cause is nil when the null-byte heuristic classified the data, otherwise it
// holds the validation error that prevented decoding.
type BinaryContent struct {
	Data  []byte
	Cause error
}

func (BinaryContent) isContent() {}

// Bytes returns a copy of the raw data.
func (c BinaryContent) Bytes() []byte {
	return bytes.Clone(c.Data)
}

func (c BinaryContent) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(c.Data).WriteTo(w)
}

// Label returns the encoding label for text or "Binary".
func Label(c Content) string {
	if encoded, ok := c.(EncodedContent); ok {
		return encoded.Text.Encoding().String()
	}
	return "Binary"
}

// contentFrom classifies raw bytes. A validation error keeps the bytes as
// binary so nothing is lost on save.
func contentFrom(data []byte) Content {
	detection, err := textcodec.Detect(data)
	if err != nil {
		return BinaryContent{Data: data, Cause: err}
	}
	if detection.Binary {
		return BinaryContent{Data: data}
	}
	return EncodedContent{Text: detection.Text}
}
