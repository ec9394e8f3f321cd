// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// IsBase64 reports whether candidate looks like base64 encoded text.
//
// Whitespace is skipped. Every other byte must belong to the standard or the
// URL-safe alphabet, '=' is only accepted as a trailing run of at most two
// characters and padded candidates must have a length which is a multiple of
// 4. Unpadded candidates of any length are accepted, as is an empty
// candidate.
//
// This is a heuristic and not a guarantee: plain text can look like base64.
// If correctness matters, decode and check the result instead.
func IsBase64(candidate []byte) bool {
	var n, pad int
	for _, c := range candidate {
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == padChar:
			pad++
			if pad > 2 {
				return false
			}
		case decodeMap[c] != invalid:
			if pad > 0 {
				return false
			}
		default:
			return false
		}
		n++
	}
	if pad > 0 {
		return n%4 == 0
	}
	return true
}
