package file

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/textenc/internal/textcodec"
)

func TestContentFrom(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantLabel string
		wantCause bool
	}{
		{name: "plain utf-8", input: []byte("hello"), wantLabel: "UTF-8"},
		{name: "utf-8 bom", input: []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, wantLabel: "UTF-8-BOM"},
		{name: "utf-16 be", input: []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}, wantLabel: "UTF-16-BE"},
		{name: "utf-16 le", input: []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}, wantLabel: "UTF-16-LE"},
		{name: "null byte", input: []byte{0x01, 0x02, 0x03, 0x00, 0x04, 0x05}, wantLabel: "Binary"},
		{name: "invalid utf-8", input: []byte{0xC3, 0x28}, wantLabel: "Binary", wantCause: true},
		{name: "uneven utf-16", input: []byte{0xFF, 0xFE, 'h'}, wantLabel: "Binary", wantCause: true},
		{name: "unpaired surrogate", input: []byte{0xFE, 0xFF, 0xDC, 0x00}, wantLabel: "Binary", wantCause: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := contentFrom(tt.input)

			assert.Equal(t, tt.wantLabel, Label(content))
			assert.Equal(t, tt.input, content.Bytes(), "content must persist the original bytes")

			binary, isBinary := content.(BinaryContent)
			if tt.wantCause {
				require.True(t, isBinary)
				assert.True(t, textcodec.IsInvalidInput(binary.Cause))
			} else if isBinary {
				assert.NoError(t, binary.Cause)
			}
		})
	}
}

func TestBinaryContent_BytesIsCopy(t *testing.T) {
	data := []byte{0x00, 0x01}
	content := BinaryContent{Data: data}

	got := content.Bytes()
	got[0] = 0xFF

	assert.Equal(t, byte(0x00), data[0])
}

func TestContent_WriteTo(t *testing.T) {
	text, err := textcodec.NewText("hi", textcodec.UTF16LE)
	require.NoError(t, err)

	contents := []struct {
		name    string
		content Content
		want    []byte
	}{
		{name: "encoded", content: EncodedContent{Text: text}, want: []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}},
		{name: "binary", content: BinaryContent{Data: []byte{0x00, 0x7F}}, want: []byte{0x00, 0x7F}},
	}

	for _, tt := range contents {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tt.content.WriteTo(&buf)

			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), n)
			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}
