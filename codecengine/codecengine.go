// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codecengine implements the command engine for mutecodec.
package codecengine

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/frankbraun/codechain/util/file"
	"github.com/mutecomm/codec/def"
	"github.com/mutecomm/codec/log"
	"github.com/mutecomm/codec/util"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"
)

var errNotBase64 = errors.New("codecengine: input does not look like base64")

// CodecEngine abstracts a mutecodec command engine.
type CodecEngine struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	app *cli.App
}

func (ce *CodecEngine) prepare(c *cli.Context) error {
	// create the log directory if it doesn't already exist
	if err := util.CreateDirs(c.GlobalString("logdir")); err != nil {
		return err
	}
	// initialize logging framework
	return log.Init(c.GlobalString("loglevel"), def.LogPrefix,
		c.GlobalString("logdir"), c.GlobalBool("logconsole"))
}

// readInput reads the complete input, either from the file given with
// --input or from stdin.
func (ce *CodecEngine) readInput(c *cli.Context) ([]byte, error) {
	name := c.GlobalString("input")
	if name != def.Stdio {
		log.Infof("read input from file '%s'", name)
		data, err := ioutil.ReadFile(name)
		if err != nil {
			return nil, log.Error(err)
		}
		return data, nil
	}
	if fp, ok := ce.stdin.(*os.File); ok && terminal.IsTerminal(int(fp.Fd())) {
		fmt.Fprintln(ce.stderr, "reading from terminal, end input with Ctrl+D")
	}
	log.Info("read input from stdin")
	data, err := ioutil.ReadAll(ce.stdin)
	if err != nil {
		return nil, log.Error(err)
	}
	return data, nil
}

// writeOutput writes data to the file given with --output or to stdout.
// Existing files are only overwritten with --force.
func (ce *CodecEngine) writeOutput(c *cli.Context, data []byte) error {
	name := c.GlobalString("output")
	if name == def.Stdio {
		if _, err := ce.stdout.Write(data); err != nil {
			return log.Error(err)
		}
		return nil
	}
	if !c.GlobalBool("force") {
		exists, err := file.Exists(name)
		if err != nil {
			return log.Error(err)
		}
		if exists {
			return log.Errorf("codecengine: output file '%s' exists already", name)
		}
	}
	log.Infof("write %d bytes to file '%s'", len(data), name)
	if err := ioutil.WriteFile(name, data, def.OutputFileMode); err != nil {
		return log.Error(err)
	}
	return nil
}

// New returns a new mutecodec command engine reading from stdin and writing
// to stdout.
func New() *CodecEngine {
	ce := &CodecEngine{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	ce.app = cli.NewApp()
	ce.app.Name = "mutecodec"
	ce.app.Usage = "tool to encode and decode binary data as base64 or hex text"
	ce.app.Version = def.Version
	ce.app.Writer = ce.stdout
	ce.app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input",
			Value: def.Stdio,
			Usage: "read input from file (- for stdin)",
		},
		cli.StringFlag{
			Name:  "output",
			Value: def.Stdio,
			Usage: "write output to file (- for stdout)",
		},
		cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite existing output file",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: def.LogLevel,
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to stderr",
		},
	}
	ce.app.Before = ce.prepare
	ce.app.Commands = []cli.Command{
		ce.base64Command(),
		ce.hexCommand(),
	}
	return ce
}

// Start starts the mutecodec engine with the given command-line arguments.
func (ce *CodecEngine) Start(args []string) error {
	return ce.app.Run(args)
}
