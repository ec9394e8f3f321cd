package log_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cihub/seelog"
	"github.com/mutecomm/codec/encode"
	"github.com/mutecomm/codec/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitErrors(t *testing.T) {
	assert.Error(t, log.Init("loud", "codec", "", true))
	assert.Error(t, log.Init("info", "code", "", true))
}

func TestInitDisabled(t *testing.T) {
	require.NoError(t, log.Init("info", "codec", "", false))
}

func TestInitLogDir(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "log_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)
	defer log.UseLogger(seelog.Disabled)
	require.NoError(t, log.Init("debug", "codec", tmpdir, false))
	log.Debugf("test message %d", 42)
	log.Flush()
	logfile := filepath.Join(tmpdir, path.Base(os.Args[0])+".log")
	content, err := ioutil.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[codec] [DBG] test message 42")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, log.SetLogWriter(&buf))
	defer log.UseLogger(seelog.Disabled)
	err := log.Error(fmt.Errorf("test: %w", encode.ErrInvalidLength))
	assert.True(t, errors.Is(err, encode.ErrInvalidLength))
	err = log.Errorf("test: %d", 1)
	assert.EqualError(t, err, "test: 1")
	log.Flush()
	assert.True(t, strings.Contains(buf.String(), "test: encode: invalid length"))
}

func TestSetLogWriterNil(t *testing.T) {
	assert.Error(t, log.SetLogWriter(nil))
}

// This example shows when and how to use the critical log level.
func Example_critical() {
	alwaysFalseCondition := false
	// ...
	if alwaysFalseCondition {
		panic(log.Critical("package name: this condition should never be true"))
	}
}

// This example shows when and how to use the error log level.
func Example_error() {
	decode := func(s string) error {
		if len(s)%2 == 1 {
			// create own error, wrapping a sentinel
			return log.Error(fmt.Errorf("hex: %w", encode.ErrInvalidLength))
		}
		// calling external package which can produce an error
		if _, err := os.Stat(s); err != nil {
			return log.Error(err)
		}
		return nil
	}
	err := decode("1")
	fmt.Println(errors.Is(err, encode.ErrInvalidLength))
	// Output:
	// true
}
