// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mutecomm/codec/encode"
	"github.com/mutecomm/codec/util/msgs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(input string) (*CodecEngine, *bytes.Buffer) {
	var stdout bytes.Buffer
	ce := New()
	ce.stdin = strings.NewReader(input)
	ce.stdout = &stdout
	ce.stderr = ioutil.Discard
	ce.app.Writer = &stdout
	return ce, &stdout
}

func run(input string, args ...string) (string, error) {
	ce, stdout := newTestEngine(input)
	err := ce.Start(append([]string{"mutecodec"}, args...))
	return stdout.String(), err
}

func TestBase64(t *testing.T) {
	out, err := run("Man", "base64", "encode")
	require.NoError(t, err)
	assert.Equal(t, "TWFu\n", out)

	out, err = run("\xfb\xff", "base64", "encode", "--urlsafe")
	require.NoError(t, err)
	assert.Equal(t, "-_8\n", out)

	out, err = run("Ma", "base64", "encode", "--chunked")
	require.NoError(t, err)
	assert.Equal(t, "TWE=\r\n", out)

	out, err = run("TWFu\r\nTWE=\r\n", "base64", "decode")
	require.NoError(t, err)
	assert.Equal(t, "ManMa", out)

	_, err = run("A===", "base64", "decode")
	require.Error(t, err)
	assert.True(t, errors.Is(err, encode.ErrMalformedPadding))
}

func TestBase64Check(t *testing.T) {
	out, err := run("TWFu\n", "base64", "check")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run("TWFu$$", "base64", "check")
	assert.Equal(t, errNotBase64, err)
	assert.Equal(t, "false\n", out)
}

func TestHex(t *testing.T) {
	out, err := run("\x00\xff", "hex", "encode")
	require.NoError(t, err)
	assert.Equal(t, "00FF\n", out)

	out, err = run("\x00\xff", "hex", "encode", "--lower")
	require.NoError(t, err)
	assert.Equal(t, "00ff\n", out)

	out, err = run("00fF\n", "hex", "decode")
	require.NoError(t, err)
	assert.Equal(t, "\x00\xff", out)

	_, err = run("zz", "hex", "decode")
	require.Error(t, err)
	assert.True(t, errors.Is(err, encode.ErrInvalidCharacter))

	_, err = run("1", "hex", "decode")
	require.Error(t, err)
	assert.True(t, errors.Is(err, encode.ErrInvalidLength))
}

func TestFiles(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "codecengine_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	input := filepath.Join(tmpdir, "input")
	encoded := filepath.Join(tmpdir, "encoded")
	decoded := filepath.Join(tmpdir, "decoded")
	require.NoError(t, ioutil.WriteFile(input, []byte(msgs.Message1), 0600))

	_, err = run("", "--input", input, "--output", encoded,
		"base64", "encode", "--chunked")
	require.NoError(t, err)
	_, err = run("", "--input", encoded, "--output", decoded,
		"base64", "decode")
	require.NoError(t, err)
	data, err := ioutil.ReadFile(decoded)
	require.NoError(t, err)
	assert.Equal(t, msgs.Message1, string(data))

	// do not overwrite existing files without --force
	_, err = run("", "--input", input, "--output", decoded,
		"hex", "encode")
	assert.Error(t, err)
	_, err = run("", "--force", "--input", input, "--output", decoded,
		"hex", "encode")
	require.NoError(t, err)
	_, err = run("", "--force", "--input", decoded, "--output", decoded,
		"hex", "decode")
	require.NoError(t, err)
	data, err = ioutil.ReadFile(decoded)
	require.NoError(t, err)
	assert.Equal(t, msgs.Message1, string(data))

	_, err = run("", "--input", filepath.Join(tmpdir, "missing"),
		"hex", "encode")
	assert.Error(t, err)
}

func TestLogDir(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "codecengine_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	logdir := filepath.Join(tmpdir, "log")
	_, err = run("Man", "--logdir", logdir, "base64", "encode")
	require.NoError(t, err)
	fi, err := os.Stat(logdir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	// reset logging
	_, err = run("Man", "base64", "encode")
	require.NoError(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run("Man", "--loglevel", "loud", "base64", "encode")
	assert.Error(t, err)
}
