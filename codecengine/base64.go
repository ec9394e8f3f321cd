// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"fmt"

	"github.com/mutecomm/codec/encode/base64"
	"github.com/mutecomm/codec/log"
	"github.com/urfave/cli"
)

func (ce *CodecEngine) base64Command() cli.Command {
	return cli.Command{
		Name:  "base64",
		Usage: "encode, decode and check base64",
		Subcommands: []cli.Command{
			{
				Name:  "encode",
				Usage: "encode input as base64",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name: "chunked",
						Usage: fmt.Sprintf("break output into lines of %d characters",
							base64.LineLength),
					},
					cli.BoolFlag{
						Name:  "urlsafe",
						Usage: "use URL-safe alphabet without padding",
					},
				},
				Action: ce.base64Encode,
			},
			{
				Name:   "decode",
				Usage:  "decode base64 input",
				Action: ce.base64Decode,
			},
			{
				Name:   "check",
				Usage:  "check whether input looks like base64",
				Action: ce.base64Check,
			},
		},
	}
}

func (ce *CodecEngine) base64Encode(c *cli.Context) error {
	in, err := ce.readInput(c)
	if err != nil {
		return err
	}
	chunked := c.Bool("chunked")
	out := base64.Encode(in, chunked, c.Bool("urlsafe"))
	// chunked output is already terminated by CRLF
	if !chunked {
		out = append(out, '\n')
	}
	log.Infof("base64: encoded %d bytes", len(in))
	return ce.writeOutput(c, out)
}

func (ce *CodecEngine) base64Decode(c *cli.Context) error {
	in, err := ce.readInput(c)
	if err != nil {
		return err
	}
	out, err := base64.Decode(in)
	if err != nil {
		return err
	}
	log.Infof("base64: decoded %d bytes", len(out))
	return ce.writeOutput(c, out)
}

func (ce *CodecEngine) base64Check(c *cli.Context) error {
	in, err := ce.readInput(c)
	if err != nil {
		return err
	}
	ok := base64.IsBase64(in)
	if err := ce.writeOutput(c, []byte(fmt.Sprintln(ok))); err != nil {
		return err
	}
	if !ok {
		return errNotBase64
	}
	return nil
}
