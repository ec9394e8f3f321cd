// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/cihub/seelog"
)

// stderrReceiverName is the name of the seelog receiver writing to stderr.
const stderrReceiverName = "stderr"

var logger seelog.LoggerInterface

// stderrReceiver is a seelog custom receiver which writes to stderr.
// The codec tools write their results to stdout, console logging must not
// interfere with that.
type stderrReceiver struct{}

func (r *stderrReceiver) ReceiveMessage(
	message string,
	level seelog.LogLevel,
	context seelog.LogContextInterface,
) error {
	_, err := io.WriteString(os.Stderr, message)
	return err
}

func (r *stderrReceiver) AfterParse(initArgs seelog.CustomReceiverInitArgs) error {
	return nil
}

func (r *stderrReceiver) Flush() {}

func (r *stderrReceiver) Close() error {
	return nil
}

func init() {
	// disable logger by default
	logger = seelog.Disabled
	seelog.RegisterReceiver(stderrReceiverName, &stderrReceiver{})
}

// Init initializes the logging framework to the given logging level.
// If logDir is not empty logging is done to a logfile in the directory.
// If logToConsole is true the logging to stderr is activated.
// If neither is requested the logger stays disabled.
// cmdPrefix must be a 5 character long command prefix.
// If the given level is invalid or the initialization fails, an
// error is returned.
func Init(logLevel, cmdPrefix, logDir string, logToConsole bool) error {
	// check level string
	_, found := seelog.LogLevelFromString(logLevel)
	if !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	// check cmdPrefix
	if len(cmdPrefix) != 5 {
		return fmt.Errorf("len(cmdPrefix) must be 5: \"%s\"", cmdPrefix)
	}
	if logDir == "" && !logToConsole {
		UseLogger(seelog.Disabled)
		return nil
	}
	// create logger
	var console string
	if logToConsole {
		console = fmt.Sprintf("<custom name=\"%s\" />", stderrReceiverName)
	}
	var file string
	if logDir != "" {
		file = fmt.Sprintf("<rollingfile type=\"size\" filename=\"%s\" maxsize=\"10485760\" maxrolls=\"3\" />",
			path.Join(logDir, path.Base(os.Args[0])+".log"))
	}
	config := `
<seelog type="sync" minlevel="%s">
	<outputs formatid="all">
		%s
		%s
	</outputs>
	<formats>
		<format id="all" format="%%UTCDate %%UTCTime [%s] [%%LEV] %%Msg%%n" />
	</formats>
</seelog>`
	config = fmt.Sprintf(config, logLevel, console, file, cmdPrefix)
	logger, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return err
	}
	logger.SetAdditionalStackDepth(1)
	// replace logger
	UseLogger(logger)
	// log info about running binary
	Infof("%s started (built with %s %s for %s/%s)", os.Args[0],
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Flush flushes all the messages in the logger.
func Flush() {
	Infof("%s stopping", os.Args[0])
	logger.Flush()
}

// Critical formats message using the default formats for its operands and
// writes to default logger with log level = Critical.
func Critical(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Critical(err)
			return err
		}
	}
	return logger.Critical(v...)
}

// Criticalf formats message according to format specifier and writes to
// default logger with log level = Critical.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error formats message using the default formats for its operands and writes
// to default logger with log level = Error.
// If called with a single error, that error is logged and returned unchanged,
// so it can still be matched with errors.Is.
func Error(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Error(err)
			return err
		}
	}
	return logger.Error(v...)
}

// Errorf formats message according to format specifier and writes to default
// logger with log level = Error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn formats message using the default formats for its operands and writes
// to default logger with log level = Warn.
func Warn(v ...interface{}) error {
	if len(v) == 1 {
		err, ok := v[0].(error)
		if ok {
			logger.Warn(err)
			return err
		}
	}
	return logger.Warn(v...)
}

// Warnf formats message according to format specifier and writes to default
// logger with log level = Warn.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info formats message using the default formats for its operands and writes
// to default logger with log level = Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof formats message according to format specifier and writes to default
// logger with log level = Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug formats message using the default formats for its operands and writes
// to default logger with log level = Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf formats message according to format specifier and writes to default
// logger with log level = Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// UseLogger uses a specified seelog.LoggerInterface to output library log.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// SetLogWriter uses a specified io.Writer to output library log.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}
