// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame_test

import (
	"io"

	"code.hybscloud.com/iox"
)

// scriptedReader simulates an underlying transport returning a fixed
// sequence of (bytes, error) steps, including mid-stream ErrWouldBlock.
type scriptedReader struct {
	steps []struct {
		b   []byte
		err error
	}
	step int
	off  int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	for {
		if r.step >= len(r.steps) {
			return 0, io.EOF
		}
		st := r.steps[r.step]
		if len(st.b) == 0 {
			r.step++
			r.off = 0
			return 0, st.err
		}
		if r.off >= len(st.b) {
			r.step++
			r.off = 0
			continue
		}
		n := copy(p, st.b[r.off:])
		r.off += n
		return n, nil
	}
}

// wouldBlockWriter accepts at most limit bytes per Write before reporting
// iox.ErrWouldBlock, buffering whatever it did accept.
type wouldBlockWriter struct {
	buf   []byte
	limit int
}

func (w *wouldBlockWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := w.limit
	if n > len(p) {
		n = len(p)
	}
	if n <= 0 {
		return 0, iox.ErrWouldBlock
	}
	w.buf = append(w.buf, p[:n]...)
	if n < len(p) {
		return n, iox.ErrWouldBlock
	}
	return n, nil
}

type noProgressReader struct{}

func (*noProgressReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return 0, nil
}

type noProgressWriter struct{}

func (*noProgressWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return 0, nil
}

// errAfterWriter accepts n bytes then returns err forever.
type errAfterWriter struct {
	n   int
	err error
	buf []byte
}

func (w *errAfterWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	take := w.n
	if take > len(p) {
		take = len(p)
	}
	w.buf = append(w.buf, p[:take]...)
	w.n -= take
	if take < len(p) {
		return take, nil
	}
	return take, nil
}
