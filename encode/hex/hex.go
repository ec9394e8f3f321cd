// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex implements the hexadecimal codec for Mute.
package hex

import (
	"fmt"

	"github.com/mutecomm/codec/encode"
	"github.com/mutecomm/codec/log"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
	invalid     = 0xff
)

// decodeMap maps hex digits of both cases to their nibble values.
var decodeMap [256]byte

func init() {
	for i := 0; i < len(decodeMap); i++ {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(lowerDigits); i++ {
		decodeMap[lowerDigits[i]] = byte(i)
		decodeMap[upperDigits[i]] = byte(i)
	}
}

// EncodedLen returns the length of an encoding of n source bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the length of a decoding of x source bytes.
func DecodedLen(x int) int { return x / 2 }

// Encode returns the hexadecimal encoding of src, high nibble first.
// Digits above 9 are lower case if toLowerCase is true, upper case otherwise.
func Encode(src []byte, toLowerCase bool) []byte {
	digits := upperDigits
	if toLowerCase {
		digits = lowerDigits
	}
	dst := make([]byte, EncodedLen(len(src)))
	for i, v := range src {
		dst[i*2] = digits[v>>4]
		dst[i*2+1] = digits[v&0x0f]
	}
	return dst
}

// EncodeToString returns the hexadecimal encoding of src as a string.
func EncodeToString(src []byte, toLowerCase bool) string {
	return string(Encode(src, toLowerCase))
}

// Decode returns the bytes represented by the hexadecimal src. Digits are
// accepted in either case. Input of odd length or with characters outside
// of 0-9a-fA-F is rejected as a whole.
func Decode(src []byte) ([]byte, error) {
	if len(src)%2 == 1 {
		return nil, log.Error(fmt.Errorf("hex: %w: odd length %d",
			encode.ErrInvalidLength, len(src)))
	}
	dst := make([]byte, DecodedLen(len(src)))
	for i := 0; i < len(src); i += 2 {
		hi := decodeMap[src[i]]
		if hi == invalid {
			return nil, invalidCharacter(i)
		}
		lo := decodeMap[src[i+1]]
		if lo == invalid {
			return nil, invalidCharacter(i + 1)
		}
		dst[i/2] = hi<<4 | lo
	}
	return dst, nil
}

func invalidCharacter(offset int) error {
	return log.Error(fmt.Errorf("hex: %w at offset %d",
		encode.ErrInvalidCharacter, offset))
}

// DecodeString returns the bytes represented by the hexadecimal string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
