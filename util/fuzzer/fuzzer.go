// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fuzzer implements a simple sequential bit-flip fuzzer for decoder
// tests.
package fuzzer

// SequentialFuzzer flips every bit of Data, one at a time, and calls
// TestFunc with each mutated copy. Data itself is never modified.
type SequentialFuzzer struct {
	Data     []byte             // valid input to mutate
	TestFunc func([]byte) error // function under test
	Errors   int                // number of mutations TestFunc rejected
	Runs     int                // number of mutations tried
}

// Fuzz runs TestFunc on all single bit mutations of Data and returns true, if
// TestFunc returned an error for at least one of them.
func (f *SequentialFuzzer) Fuzz() bool {
	f.Errors = 0
	f.Runs = 0
	mutated := make([]byte, len(f.Data))
	for i := 0; i < len(f.Data); i++ {
		for bit := uint(0); bit < 8; bit++ {
			copy(mutated, f.Data)
			mutated[i] ^= 1 << bit
			if err := f.TestFunc(mutated); err != nil {
				f.Errors++
			}
			f.Runs++
		}
	}
	return f.Errors > 0
}
