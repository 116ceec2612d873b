// Package hexcodec converts between byte slices and their hexadecimal text
// representation. Unlike encoding/hex it can encode in either letter case,
// and decoding accepts both cases.
package hexcodec

import (
	"errors"
	"fmt"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// ErrOddLength is returned by Decode when the input has an odd number of
// characters: every encoded byte is exactly two digits.
var ErrOddLength = errors.New("hexcodec: odd length hex string")

// InvalidByteError is returned by Decode when the input contains a byte that
// is not a hexadecimal digit.
type InvalidByteError struct {
	Byte   byte
	Offset int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("hexcodec: invalid byte %q at offset %d", e.Byte, e.Offset)
}

// Encode returns the hexadecimal representation of src, two digits per byte
// in input order. The uppercase flag selects 'A'-'F' vs 'a'-'f'. An empty or
// nil src encodes to "".
func Encode(src []byte, uppercase bool) string {
	digits := lowerDigits
	if uppercase {
		digits = upperDigits
	}
	dst := make([]byte, len(src)*2)
	for i, v := range src {
		dst[i*2] = digits[v>>4]
		dst[i*2+1] = digits[v&0x0f]
	}
	return string(dst)
}

// Decode parses a hexadecimal string back into bytes. Both letter cases are
// accepted, mixed freely. It returns ErrOddLength when len(s) is odd and
// *InvalidByteError for the first non-hex byte encountered, so a failed
// decode is never mistaken for decoding an empty string.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	dst := make([]byte, len(s)/2)
	for i := range dst {
		hi, ok := fromHexChar(s[i*2])
		if !ok {
			return nil, &InvalidByteError{Byte: s[i*2], Offset: i * 2}
		}
		lo, ok := fromHexChar(s[i*2+1])
		if !ok {
			return nil, &InvalidByteError{Byte: s[i*2+1], Offset: i*2 + 1}
		}
		dst[i] = hi<<4 | lo
	}
	return dst, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
