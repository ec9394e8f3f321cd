// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"io"
)

type encoder struct {
	w       io.Writer
	chunked bool
	urlSafe bool
	buf     [3]byte // pending input bytes
	nbuf    int
	col     int // characters written to the current line
	out     [1024]byte
	err     error
}

// NewEncoder returns a new base64 stream encoder. Data written to the
// returned writer is encoded and written to w. The output is identical to
// Encode of all written data with the same options.
//
// Callers must close the returned encoder to flush the final quantum and,
// if chunked, the final line separator.
func NewEncoder(w io.Writer, chunked, urlSafe bool) io.WriteCloser {
	return &encoder{w: w, chunked: chunked, urlSafe: urlSafe}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// complete leftover quantum
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return n, nil
		}
		if err := e.emit(e.buf[:]); err != nil {
			return n, err
		}
		e.nbuf = 0
	}

	// encode full quanta
	for len(p) >= 3 {
		nn := len(e.out) / 4 * 3
		if nn > len(p) {
			nn = len(p) / 3 * 3
		}
		if err := e.emit(p[:nn]); err != nil {
			return n, err
		}
		n += nn
		p = p[nn:]
	}

	// keep remainder
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return n, nil
}

// emit encodes src and writes the result. Only the final call may pass a
// src whose length is not a multiple of 3.
func (e *encoder) emit(src []byte) error {
	l := encodedLen(len(src), e.urlSafe)
	encodeBlocks(e.out[:l], src, e.urlSafe)
	return e.writeLines(e.out[:l])
}

func (e *encoder) writeLines(p []byte) error {
	if !e.chunked {
		_, e.err = e.w.Write(p)
		return e.err
	}
	for len(p) > 0 {
		k := LineLength - e.col
		if k > len(p) {
			k = len(p)
		}
		if _, e.err = e.w.Write(p[:k]); e.err != nil {
			return e.err
		}
		e.col += k
		p = p[k:]
		if e.col == LineLength {
			if _, e.err = e.w.Write(lineSeparator); e.err != nil {
				return e.err
			}
			e.col = 0
		}
	}
	return nil
}

// Close flushes any pending output from the encoder.
// It does not close the underlying writer.
func (e *encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		e.emit(e.buf[:e.nbuf])
		e.nbuf = 0
	}
	if e.err == nil && e.chunked && e.col > 0 {
		_, e.err = e.w.Write(lineSeparator)
		e.col = 0
	}
	return e.err
}

type streamDecoder struct {
	r   io.Reader
	d   decoder
	in  [1024]byte
	out []byte // decoded bytes not yet returned
	err error
}

// NewDecoder constructs a new base64 stream decoder. It applies the same
// rules as Decode. Decode errors are sticky, bytes decoded from the chunk of
// input containing the error are discarded.
func NewDecoder(r io.Reader) io.Reader {
	return &streamDecoder{r: r}
}

func (s *streamDecoder) Read(p []byte) (int, error) {
	for len(s.out) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		n, err := s.r.Read(s.in[:])
		if n > 0 {
			var derr error
			s.out, derr = s.d.write(s.out[:0], s.in[:n])
			if derr != nil {
				s.out = nil
				s.err = derr
				return 0, derr
			}
		}
		if err == io.EOF {
			var derr error
			s.out, derr = s.d.finish(s.out)
			if derr != nil {
				s.out = nil
				s.err = derr
				return 0, derr
			}
			s.err = io.EOF
		} else if err != nil {
			s.err = err
		}
	}
	n := copy(p, s.out)
	s.out = s.out[n:]
	return n, nil
}
