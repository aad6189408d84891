package textcodec

import (
	"bytes"

	gitbinary "github.com/go-git/go-git/v5/utils/binary"
)

// BinarySniffLength is the number of leading bytes scanned for a null byte.
// It is the same window git uses.
const BinarySniffLength = 8000

// IsBinary reports whether a null byte occurs within the first
// BinarySniffLength bytes of data. Empty data is not binary.
func IsBinary(data []byte) bool {
	if len(data) > BinarySniffLength {
		data = data[:BinarySniffLength]
	}
	// Reading from an in-memory buffer cannot fail.
	binary, _ := gitbinary.IsBinary(bytes.NewReader(data))
	return binary
}
