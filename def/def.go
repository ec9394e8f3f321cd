// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package def defines all default values used by the codec tools.
package def

import (
	"github.com/mutecomm/codec/def/version"
)

// Version is the current version of the codec tools.
const Version = version.Number

// LogLevel is the default logging level.
const LogLevel = "info"

// LogPrefix is the 5 character command prefix written into every log line.
const LogPrefix = "codec"

// Stdio is the file name which denotes stdin (for input) or stdout (for
// output).
const Stdio = "-"

// OutputFileMode is the mode of newly created output files.
const OutputFileMode = 0644
