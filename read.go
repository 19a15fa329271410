// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"
	"io"
	"time"

	"code.hybscloud.com/frame/internal/buf"
)

// ReadEngine produces a lazy, finite sequence of items decoded from an
// io.Reader. It owns a growing read buffer (initial capacity 8 KiB) and the
// Decoder that turns buffered bytes into items.
//
// A ReadEngine is not safe for concurrent use; its operations are driven by
// whichever goroutine currently holds it, per the framing specification's
// single-threaded cooperative scheduling model.
type ReadEngine[Item any] struct {
	fused      fused[io.Reader, Decoder[Item]]
	buf        *Buffer
	retryDelay time.Duration
}

// NewReadEngine constructs a ReadEngine reading from r and decoding with dec.
func NewReadEngine[Item any](r io.Reader, dec Decoder[Item], opts ...Option) *ReadEngine[Item] {
	o := resolveOptions(opts)
	return &ReadEngine[Item]{
		fused:      newFused[io.Reader, Decoder[Item]](r, dec),
		buf:        buf.New(o.ReadBufferHint),
		retryDelay: o.RetryDelay,
	}
}

// Next decodes and returns the next item. It returns io.EOF when the
// sequence is exhausted: the byte source reached end-of-input with nothing
// left to decode.
//
// In the cooperative operating mode (the default; see WithNonblock), Next
// returns ErrWouldBlock or ErrMore when the only remaining suspension point —
// the underlying Read call — would block; internal state (buffered bytes,
// in-flight read) is preserved so the caller can simply call Next again once
// more bytes may be available. In the blocking mode (WithBlock), Next never
// returns those signals: the call blocks the goroutine until an item, EOF,
// or a real error is available.
func (e *ReadEngine[Item]) Next() (Item, error) {
	var zero Item
	if e.fused.io == nil || e.fused.codec == nil {
		return zero, ErrInvalidArgument
	}

	if item, ok, err := e.fused.codec.Decode(e.buf); err != nil {
		return zero, err
	} else if ok {
		return item, nil
	}

	var scratch [buf.InitialCapacity]byte
	for {
		n, rerr := readOnce(e.fused.io, scratch[:], e.retryDelay)
		if n > 0 {
			e.buf.Append(scratch[:n])
		}
		ended := errors.Is(rerr, io.EOF)
		if rerr != nil && !ended {
			// In the cooperative mode, ErrWouldBlock and ErrMore are surfaced
			// immediately, as is a genuine I/O failure in either mode,
			// preserving whatever was already appended. In the blocking mode,
			// bytes that arrived with ErrWouldBlock or ErrMore are decoded
			// below and the read is retried.
			if e.retryDelay < 0 || (rerr != ErrWouldBlock && rerr != ErrMore) {
				return zero, rerr
			}
		}

		item, ok, derr := e.fused.codec.Decode(e.buf)
		if derr != nil {
			return zero, derr
		}
		if ok {
			return item, nil
		}
		if !ended {
			continue
		}

		if e.buf.Empty() {
			return zero, io.EOF
		}
		eitem, eok, eerr := decodeEOF[Item](e.fused.codec, e.buf)
		if eerr != nil {
			return zero, eerr
		}
		if eok {
			return eitem, nil
		}
		if e.buf.Empty() {
			return zero, io.EOF
		}
		return zero, ErrUnexpectedEndOfInput
	}
}

// Release consumes the engine, returning the underlying Reader and Decoder
// unchanged. Any bytes still in the read buffer are discarded.
func (e *ReadEngine[Item]) Release() (io.Reader, Decoder[Item]) {
	return e.fused.release()
}

// IntoInner consumes the engine, returning just the underlying Reader.
func (e *ReadEngine[Item]) IntoInner() io.Reader {
	r, _ := e.Release()
	return r
}

// Decoder returns the underlying decoder.
func (e *ReadEngine[Item]) Decoder() Decoder[Item] { return e.fused.codec }

// Buffered reports how many bytes are currently held in the read buffer,
// awaiting decode.
func (e *ReadEngine[Item]) Buffered() int { return e.buf.Len() }
