// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mutecodec is the codec tool for Mute which encodes and decodes binary
// data as base64 or hex text.
package main

import (
	"os"

	"github.com/mutecomm/codec/codecengine"
	"github.com/mutecomm/codec/log"
	"github.com/mutecomm/codec/release"
	"github.com/mutecomm/codec/util"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func mutecodecMain() error {
	defer log.Flush()
	return codecengine.New().Start(os.Args)
}

func main() {
	// work around defer not working after os.Exit()
	if err := mutecodecMain(); err != nil {
		util.Fatal(err)
	}
}
