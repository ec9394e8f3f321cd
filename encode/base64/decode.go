// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"fmt"

	"github.com/mutecomm/codec/encode"
	"github.com/mutecomm/codec/log"
)

// decoder holds the state of an incremental base64 decode.
//
// Characters of both alphabets are accepted, CR and LF are skipped anywhere.
// Padding is optional, but if present it has to complete the final quantum:
// it must follow at least two data characters, it must not be followed by
// further data and the quantum including padding must have 4 characters.
// Unpadded input with a final quantum of a single character is rejected.
type decoder struct {
	quantum [4]byte // 6-bit values of the current quantum
	n       int     // number of values in quantum
	pad     int     // number of padding characters seen
	closed  bool    // a padded quantum completed the input
	offset  int     // offset of the next input byte
}

func (d *decoder) fail(kind error, offset int) error {
	return log.Error(fmt.Errorf("base64: %w at offset %d", kind, offset))
}

// flush appends the bytes of the (possibly short) current quantum to dst.
func (d *decoder) flush(dst []byte) []byte {
	q := d.quantum
	switch d.n {
	case 4:
		dst = append(dst, q[0]<<2|q[1]>>4, q[1]<<4|q[2]>>2, q[2]<<6|q[3])
	case 3:
		dst = append(dst, q[0]<<2|q[1]>>4, q[1]<<4|q[2]>>2)
	case 2:
		dst = append(dst, q[0]<<2|q[1]>>4)
	}
	d.n = 0
	return dst
}

// write decodes src and appends the bytes of all completed quanta to dst.
func (d *decoder) write(dst, src []byte) ([]byte, error) {
	for _, c := range src {
		offset := d.offset
		d.offset++
		switch c {
		case '\r', '\n':
			continue
		case padChar:
			if d.closed || d.n < 2 {
				return dst, d.fail(encode.ErrMalformedPadding, offset)
			}
			d.pad++
			if d.n+d.pad == 4 {
				dst = d.flush(dst)
				d.closed = true
			}
			continue
		}
		if d.closed || d.pad > 0 {
			return dst, d.fail(encode.ErrMalformedPadding, offset)
		}
		v := decodeMap[c]
		if v == invalid {
			return dst, d.fail(encode.ErrInvalidCharacter, offset)
		}
		d.quantum[d.n] = v
		d.n++
		if d.n == 4 {
			dst = d.flush(dst)
		}
	}
	return dst, nil
}

// finish completes the decode at the end of input and appends the bytes of
// an unpadded final quantum to dst.
func (d *decoder) finish(dst []byte) ([]byte, error) {
	if d.closed {
		return dst, nil
	}
	if d.pad > 0 {
		return dst, d.fail(encode.ErrMalformedPadding, d.offset)
	}
	if d.n == 1 {
		return dst, d.fail(encode.ErrInvalidLength, d.offset)
	}
	return d.flush(dst), nil
}
