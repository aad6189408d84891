package textcodec

// Byte order marks recognised at the start of a buffer.
var (
	utf8BOM    = [UTF8BOMLen]byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = [UTF16BOMLen]byte{0xFE, 0xFF}
	utf16LEBOM = [UTF16BOMLen]byte{0xFF, 0xFE}
)

const (
	// UTF8BOMLen is the length of the UTF-8 byte order mark.
	UTF8BOMLen = 3
	// UTF16BOMLen is the length of both UTF-16 byte order marks.
	UTF16BOMLen = 2
)

// BOMUTF8 returns a fresh copy of the UTF-8 byte order mark (EF BB BF).
func BOMUTF8() []byte {
	b := utf8BOM
	return b[:]
}

// BOMUTF16BE returns a fresh copy of the big-endian UTF-16 byte order mark (FE FF).
func BOMUTF16BE() []byte {
	b := utf16BEBOM
	return b[:]
}

// BOMUTF16LE returns a fresh copy of the little-endian UTF-16 byte order mark (FF FE).
func BOMUTF16LE() []byte {
	b := utf16LEBOM
	return b[:]
}
