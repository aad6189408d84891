package textcodec

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoding_String(t *testing.T) {
	assert.Equal(t, "UTF-8", UTF8.String())
	assert.Equal(t, "UTF-8-BOM", UTF8BOM.String())
	assert.Equal(t, "UTF-16-BE", UTF16BE.String())
	assert.Equal(t, "UTF-16-LE", UTF16LE.String())
	assert.Equal(t, "Encoding(7)", Encoding(7).String())
}

func TestEncoding_BOM(t *testing.T) {
	assert.Nil(t, UTF8.BOM())
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, UTF8BOM.BOM())
	assert.Equal(t, []byte{0xFE, 0xFF}, UTF16BE.BOM())
	assert.Equal(t, []byte{0xFF, 0xFE}, UTF16LE.BOM())
	assert.Len(t, BOMUTF8(), UTF8BOMLen)
	assert.Len(t, BOMUTF16BE(), UTF16BOMLen)

	// Callers get their own copy.
	bom := BOMUTF16LE()
	bom[0] = 0x00
	assert.Equal(t, []byte{0xFF, 0xFE}, BOMUTF16LE())
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input string
		want  Encoding
	}{
		{input: "UTF-8", want: UTF8},
		{input: "utf8", want: UTF8},
		{input: "utf-8-bom", want: UTF8BOM},
		{input: "UTF8BOM", want: UTF8BOM},
		{input: "utf_16_be", want: UTF16BE},
		{input: " utf16le ", want: UTF16LE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEncoding(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseEncoding("latin-1")
	var unknown *UnknownEncodingError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "latin-1", unknown.Name)
	assert.True(t, IsInvalidInput(err))
}

func TestEncoding_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Encoding{"encoding": UTF16LE})
	require.NoError(t, err)
	assert.JSONEq(t, `{"encoding":"UTF-16-LE"}`, string(data))

	var decoded struct {
		Encoding Encoding `json:"encoding"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"encoding":"utf-8-bom"}`), &decoded))
	assert.Equal(t, UTF8BOM, decoded.Encoding)

	assert.Error(t, json.Unmarshal([]byte(`{"encoding":"shift-jis"}`), &decoded))
}
