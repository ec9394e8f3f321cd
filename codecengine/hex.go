// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"bytes"

	"github.com/mutecomm/codec/encode/hex"
	"github.com/mutecomm/codec/log"
	"github.com/urfave/cli"
)

func (ce *CodecEngine) hexCommand() cli.Command {
	return cli.Command{
		Name:  "hex",
		Usage: "encode and decode hex",
		Subcommands: []cli.Command{
			{
				Name:  "encode",
				Usage: "encode input as hex",
				Flags: []cli.Flag{
					cli.BoolFlag{
						Name:  "lower",
						Usage: "use lower case digits",
					},
				},
				Action: ce.hexEncode,
			},
			{
				Name:   "decode",
				Usage:  "decode hex input",
				Action: ce.hexDecode,
			},
		},
	}
}

func (ce *CodecEngine) hexEncode(c *cli.Context) error {
	in, err := ce.readInput(c)
	if err != nil {
		return err
	}
	out := append(hex.Encode(in, c.Bool("lower")), '\n')
	log.Infof("hex: encoded %d bytes", len(in))
	return ce.writeOutput(c, out)
}

func (ce *CodecEngine) hexDecode(c *cli.Context) error {
	in, err := ce.readInput(c)
	if err != nil {
		return err
	}
	// allow input terminated by a line break, like the output of hex encode
	out, err := hex.Decode(bytes.TrimRight(in, "\r\n"))
	if err != nil {
		return err
	}
	log.Infof("hex: decoded %d bytes", len(out))
	return ce.writeOutput(c, out)
}
