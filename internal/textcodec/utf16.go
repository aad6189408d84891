package textcodec

import (
	"encoding/binary"
	"unicode/utf16"
)

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// PackUTF16 groups data into 16-bit units using the given byte order.
// data must already have its BOM removed. An odd length fails with
// *UnevenLengthError and no units; empty input yields an empty slice.
// Surrogates are not checked here, see ValidateUTF16.
func PackUTF16(data []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, &UnevenLengthError{Length: len(data)}
	}

	units := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:i+2]))
	}
	return units, nil
}

// ValidateUTF16 checks that every high surrogate is followed by a low
// surrogate and that no low surrogate appears on its own.
func ValidateUTF16(units []uint16) error {
	if err := validateUTF16(units); err != nil {
		return err
	}
	return nil
}

func validateUTF16(units []uint16) *MalformedUTF16Error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= highSurrogateMin && u <= highSurrogateMax:
			if i+1 == len(units) {
				return &MalformedUTF16Error{Index: i, Unit: u, Reason: "incomplete surrogate pair"}
			}
			next := units[i+1]
			if next < lowSurrogateMin || next > lowSurrogateMax {
				return &MalformedUTF16Error{Index: i, Unit: u, Reason: "high surrogate not followed by low surrogate"}
			}
			i++
		case u >= lowSurrogateMin && u <= lowSurrogateMax:
			return &MalformedUTF16Error{Index: i, Unit: u, Reason: "unpaired low surrogate"}
		}
	}
	return nil
}

// decodeUTF16 packs, validates and converts a BOM-less UTF-16 payload.
func decodeUTF16(data []byte, enc Encoding) (string, error) {
	order, _ := enc.byteOrder()
	units, err := PackUTF16(data, order)
	if err != nil {
		return "", err
	}
	if verr := validateUTF16(units); verr != nil {
		verr.Encoding = enc
		return "", verr
	}
	return string(utf16.Decode(units)), nil
}
