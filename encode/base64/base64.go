// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base64 implements the base64 codec for Mute.
//
// Two alphabets are supported: the standard alphabet of RFC 4648 section 4
// (with '=' padding) and the URL and filename safe alphabet of RFC 4648
// section 5 (without padding). Encoded output can optionally be chunked into
// MIME lines of LineLength characters, each terminated by CRLF. The decoder
// accepts both alphabets, padded or unpadded, and skips line breaks.
//
// All functions are safe for concurrent use.
package base64

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	padChar     = '='
	invalid     = 0xff
)

// LineLength is the maximum number of encoded characters per line in chunked
// output (RFC 2045).
const LineLength = 76

// lineSeparator terminates every line of chunked output, including the last.
var lineSeparator = []byte("\r\n")

// decodeMap maps the characters of both alphabets to their 6-bit values.
// All other entries are invalid.
var decodeMap [256]byte

func init() {
	for i := 0; i < len(decodeMap); i++ {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(stdAlphabet); i++ {
		decodeMap[stdAlphabet[i]] = byte(i)
		decodeMap[urlAlphabet[i]] = byte(i)
	}
}

func alphabet(urlSafe bool) string {
	if urlSafe {
		return urlAlphabet
	}
	return stdAlphabet
}

// encodedLen returns the length of the unchunked encoding of n bytes.
func encodedLen(n int, urlSafe bool) int {
	if urlSafe {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// EncodedLen returns the length in bytes of the base64 encoding of an input
// buffer of length n.
func EncodedLen(n int, chunked, urlSafe bool) int {
	l := encodedLen(n, urlSafe)
	if chunked && l > 0 {
		l += (l + LineLength - 1) / LineLength * len(lineSeparator)
	}
	return l
}

// encodeBlocks encodes src into dst, which must have room for exactly
// encodedLen(len(src), urlSafe) bytes.
func encodeBlocks(dst, src []byte, urlSafe bool) {
	enc := alphabet(urlSafe)
	di, si := 0, 0
	n := (len(src) / 3) * 3
	for si < n {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di+0] = enc[val>>18&0x3f]
		dst[di+1] = enc[val>>12&0x3f]
		dst[di+2] = enc[val>>6&0x3f]
		dst[di+3] = enc[val&0x3f]
		si += 3
		di += 4
	}

	remain := len(src) - si
	if remain == 0 {
		return
	}
	val := uint(src[si]) << 16
	if remain == 2 {
		val |= uint(src[si+1]) << 8
	}
	dst[di+0] = enc[val>>18&0x3f]
	dst[di+1] = enc[val>>12&0x3f]
	switch remain {
	case 2:
		dst[di+2] = enc[val>>6&0x3f]
		if !urlSafe {
			dst[di+3] = padChar
		}
	case 1:
		if !urlSafe {
			dst[di+2] = padChar
			dst[di+3] = padChar
		}
	}
}

// chunk splits encoded into lines of at most LineLength characters and
// terminates every line with lineSeparator. A last line of exactly
// LineLength characters is terminated only once.
func chunk(encoded []byte) []byte {
	if len(encoded) == 0 {
		return encoded
	}
	lines := (len(encoded) + LineLength - 1) / LineLength
	out := make([]byte, 0, len(encoded)+lines*len(lineSeparator))
	for len(encoded) > LineLength {
		out = append(out, encoded[:LineLength]...)
		out = append(out, lineSeparator...)
		encoded = encoded[LineLength:]
	}
	out = append(out, encoded...)
	return append(out, lineSeparator...)
}

// Encode returns the base64 encoding of src.
//
// If urlSafe is true the URL-safe alphabet is used and the output is not
// padded, otherwise the standard alphabet with '=' padding is used.
// If chunked is true the output is broken into lines of LineLength
// characters and every line (including the last one) is terminated by CRLF.
func Encode(src []byte, chunked, urlSafe bool) []byte {
	dst := make([]byte, encodedLen(len(src), urlSafe))
	encodeBlocks(dst, src, urlSafe)
	if chunked {
		return chunk(dst)
	}
	return dst
}

// EncodeToString returns the base64 encoding of src as a string.
func EncodeToString(src []byte, chunked, urlSafe bool) string {
	return string(Encode(src, chunked, urlSafe))
}

// EncodeURLSafeString returns the unchunked and unpadded URL-safe base64
// encoding of src.
func EncodeURLSafeString(src []byte) string {
	return EncodeToString(src, false, true)
}

// Decode returns the bytes represented by the base64 encoded src.
// See decoder for the accepted input.
func Decode(src []byte) ([]byte, error) {
	var d decoder
	dst, err := d.write(make([]byte, 0, len(src)/4*3+2), src)
	if err != nil {
		return nil, err
	}
	dst, err = d.finish(dst)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeString returns the bytes represented by the base64 string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
