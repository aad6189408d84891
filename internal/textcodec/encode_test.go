package textcodec

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustText(t *testing.T, s string, enc Encoding) Text {
	t.Helper()
	text, err := NewText(s, enc)
	require.NoError(t, err)
	return text
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		enc   Encoding
		want  []byte
	}{
		{name: "utf-8 empty", input: "", enc: UTF8, want: []byte{}},
		{name: "utf-8 ascii", input: "Hello!", enc: UTF8, want: []byte("Hello!")},

		// The BOM is always written, even for empty text.
		{name: "utf-8 bom empty", input: "", enc: UTF8BOM, want: []byte("\xEF\xBB\xBF")},
		{name: "utf-8 bom ascii", input: "Hello!", enc: UTF8BOM, want: []byte("\xEF\xBB\xBF\x48\x65\x6C\x6C\x6F\x21")},
		{name: "utf-8 bom latin-1 chars", input: "éüñç", enc: UTF8BOM, want: []byte("\xEF\xBB\xBF\xC3\xA9\xC3\xBC\xC3\xB1\xC3\xA7")},
		{name: "utf-8 bom mandarin chars", input: "你好", enc: UTF8BOM, want: []byte("\xEF\xBB\xBF\xE4\xBD\xA0\xE5\xA5\xBD")},
		{name: "utf-8 bom supplementary plane", input: "🌍🚀", enc: UTF8BOM, want: []byte("\xEF\xBB\xBF\xF0\x9F\x8C\x8D\xF0\x9F\x9A\x80")},

		{name: "utf-16 be empty", input: "", enc: UTF16BE, want: []byte("\xFE\xFF")},
		{name: "utf-16 be 16-bit chars", input: "Hello!", enc: UTF16BE, want: []byte("\xFE\xFF\x00\x48\x00\x65\x00\x6C\x00\x6C\x00\x6F\x00\x21")},
		{name: "utf-16 be surrogate pairs", input: "🌍🚀", enc: UTF16BE, want: []byte("\xFE\xFF\xD8\x3C\xDF\x0D\xD8\x3D\xDE\x80")},
		{name: "utf-16 be mixed", input: "Hello! 😊", enc: UTF16BE, want: []byte("\xFE\xFF\x00\x48\x00\x65\x00\x6C\x00\x6C\x00\x6F\x00\x21\x00\x20\xD8\x3D\xDE\x0A")},

		{name: "utf-16 le empty", input: "", enc: UTF16LE, want: []byte("\xFF\xFE")},
		{name: "utf-16 le 16-bit chars", input: "Hello!", enc: UTF16LE, want: []byte("\xFF\xFE\x48\x00\x65\x00\x6C\x00\x6C\x00\x6F\x00\x21\x00")},
		{name: "utf-16 le surrogate pairs", input: "🌍🚀", enc: UTF16LE, want: []byte("\xFF\xFE\x3C\xD8\x0D\xDF\x3D\xD8\x80\xDE")},
		{name: "utf-16 le mixed", input: "Hello! 😊", enc: UTF16LE, want: []byte("\xFF\xFE\x48\x00\x65\x00\x6C\x00\x6C\x00\x6F\x00\x21\x00\x20\x00\x3D\xD8\x0A\xDE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(mustText(t, tt.input, tt.enc))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_DetectEncode(t *testing.T) {
	inputs := []string{
		"",
		"Hello!",
		unicodeSample,
		"line one\r\nline two\n",
		"\uFFFD replacement char is valid text",
		"tab\tand\x01control",
		"𝄞 music and 🧪 lab",
		"inner \uFEFF no-break space",
	}

	for _, enc := range Encodings() {
		for i, input := range inputs {
			t.Run(fmt.Sprintf("%s/%d", enc, i), func(t *testing.T) {
				text := mustText(t, input, enc)

				got, err := Detect(Encode(text))

				require.NoError(t, err)
				require.False(t, got.Binary)
				assert.Equal(t, text, got.Text)
			})
		}
	}
}

func TestRoundTrip_PlainUTF8Ambiguities(t *testing.T) {
	// Plain UTF-8 carries no marker, so two kinds of text read back differently.
	// The bytes themselves still round-trip.
	t.Run("leading U+FEFF reads as a BOM", func(t *testing.T) {
		encoded := Encode(mustText(t, "\uFEFFHi", UTF8))

		got, err := Detect(encoded)

		require.NoError(t, err)
		assert.Equal(t, UTF8BOM, got.Text.Encoding())
		assert.Equal(t, "Hi", got.Text.String())
		assert.Equal(t, encoded, Encode(got.Text))
	})

	t.Run("NUL within the sniff window reads as binary", func(t *testing.T) {
		encoded := Encode(mustText(t, "a\x00b", UTF8))

		got, err := Detect(encoded)

		require.NoError(t, err)
		assert.True(t, got.Binary)
	})

	t.Run("NUL survives in UTF-16", func(t *testing.T) {
		text := mustText(t, "a\x00b", UTF16BE)

		got, err := Detect(Encode(text))

		require.NoError(t, err)
		assert.Equal(t, text, got.Text)
	})
}

func TestEncodeString(t *testing.T) {
	got, err := EncodeString("He", UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE, 0x48, 0x00, 0x65, 0x00}, got)

	_, err = EncodeString("\xC1\x80", UTF16LE)
	var malformed *MalformedUTF8Error
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Offset)
}

func TestNewText(t *testing.T) {
	t.Run("rejects encoded surrogate", func(t *testing.T) {
		_, err := NewText("a\xED\xA0\x80", UTF16BE)
		var malformed *MalformedUTF8Error
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Offset)
	})

	t.Run("rejects unknown encoding", func(t *testing.T) {
		_, err := NewText("ok", Encoding(42))
		var unknown *UnknownEncodingError
		require.ErrorAs(t, err, &unknown)
	})

	t.Run("WithEncoding returns a copy", func(t *testing.T) {
		original := mustText(t, "He", UTF8)

		retagged := original.WithEncoding(UTF16BE)

		assert.Equal(t, UTF8, original.Encoding())
		assert.Equal(t, UTF16BE, retagged.Encoding())
		assert.Equal(t, original.String(), retagged.String())
		assert.Equal(t, UTF16BE, retagged.WithEncoding(Encoding(99)).Encoding())
	})
}
