// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"testing"

	"github.com/mutecomm/codec/util/msgs"
	"github.com/stretchr/testify/assert"
)

func TestIsBase64(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"", true},
		{"TWFu", true},
		{"TWE=", true},
		{"TQ==", true},
		{"TWE", true},
		{"-_8", true},
		{"+/8=", true},
		{"TWFu\r\nTWE=\r\n", true},
		{" TWFu\tTWFu ", true},
		{"TWFu$$", false},
		{"TW=u", false},
		{"TQ=", false},
		{"A===", false},
		{"====", false},
		{"TWFu.", false},
		{"TWFu\x00", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, IsBase64([]byte(test.candidate)), "%q", test.candidate)
	}
}

func TestIsBase64Encoded(t *testing.T) {
	data := []byte(msgs.Message1)
	for _, chunked := range []bool{false, true} {
		for _, urlSafe := range []bool{false, true} {
			assert.True(t, IsBase64(Encode(data, chunked, urlSafe)))
		}
	}
	assert.False(t, IsBase64(data))
}
