// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encode defines the errors shared by the binary-to-text codecs in
// its subpackages.
//
// The decoders in encode/base64 and encode/hex wrap these errors together
// with the offset of the offending input byte, use errors.Is to match them.
package encode

import (
	"errors"
)

// ErrInvalidCharacter is raised when decoder input contains a character
// outside of the expected alphabet.
var ErrInvalidCharacter = errors.New("encode: invalid character")

// ErrInvalidLength is raised when the length of the decoder input is not
// compatible with the quantum of the codec.
var ErrInvalidLength = errors.New("encode: invalid length")

// ErrMalformedPadding is raised when base64 padding appears in a non-trailing
// position or in an inconsistent count.
var ErrMalformedPadding = errors.New("encode: malformed padding")
