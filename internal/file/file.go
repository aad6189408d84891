// Package file pairs a path with its content and moves it between disk and
// memory, delegating detection and serialisation to textcodec.
package file

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/textenc/internal/textcodec"
)

// File is an immutable path/content pair. Use WithPath or WithContent to
// derive a new File; the original is never modified.
type File struct {
	path    string
	content Content
}

// NewFile pairs path with content.
func NewFile(path string, content Content) *File {
	return &File{path: path, content: content}
}

// New reads r to the end and classifies the bytes. Content that fails
// validation is kept as BinaryContent with the error in Cause, so writing it
// back is lossless. Errors from r are returned unchanged.
func New(path string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(path, data), nil
}

// FromBytes classifies data the same way New does. data is retained.
func FromBytes(path string, data []byte) *File {
	return NewFile(path, contentFrom(data))
}

// ReadFromReader reads r and returns its text. Unlike New, validation
// failures are returned, and binary content yields textcodec.ErrBinaryContent.
func ReadFromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text, err := textcodec.Decode(data)
	if err != nil {
		return "", err
	}
	return text.String(), nil
}

func (f *File) Path() string { return f.path }

func (f *File) Content() Content { return f.content }

// WithPath returns a copy of f saved under a different path.
func (f *File) WithPath(path string) *File {
	return NewFile(path, f.content)
}

// WithContent returns a copy of f holding different content.
func (f *File) WithContent(content Content) *File {
	return NewFile(f.path, content)
}

// Text returns the decoded text, or false for binary content.
func (f *File) Text() (textcodec.Text, bool) {
	encoded, ok := f.content.(EncodedContent)
	return encoded.Text, ok
}

// String renders the file the way `textenc cat` prints it.
func (f *File) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s\nEncoding: %s\nContent:\n", f.path, Label(f.content))
	switch c := f.content.(type) {
	case EncodedContent:
		sb.WriteString(c.Text.String())
	case BinaryContent:
		fmt.Fprintf(&sb, "%v", c.Data)
	}
	return sb.String()
}
