// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import (
	"io"
	"time"

	"code.hybscloud.com/frame/internal/buf"
)

// Flusher is implemented by I/O objects that need an explicit flush beyond
// having all buffered bytes handed to Write (e.g. *bufio.Writer). Flush and
// Close call it when the underlying I/O object supports it.
type Flusher interface {
	Flush() error
}

// WriteEngine accepts a stream of items, serializes each with an Encoder into
// a write buffer, and drains that buffer to an io.Writer under a high-water-
// mark backpressure policy. The high-water mark is the only backpressure
// signal: Ready is the point at which producers wait.
//
// A WriteEngine is not safe for concurrent use.
type WriteEngine[Item any] struct {
	fused      fused[io.Writer, Encoder[Item]]
	buf        *Buffer
	hwm        int
	retryDelay time.Duration
}

// NewWriteEngine constructs a WriteEngine writing to w, encoding with enc.
func NewWriteEngine[Item any](w io.Writer, enc Encoder[Item], opts ...Option) *WriteEngine[Item] {
	o := resolveOptions(opts)
	return &WriteEngine[Item]{
		fused:      newFused[io.Writer, Encoder[Item]](w, enc),
		buf:        buf.New(o.WriteBufferHint),
		hwm:        o.HighWaterMark,
		retryDelay: o.RetryDelay,
	}
}

// HighWaterMark returns the current backpressure threshold in bytes.
func (e *WriteEngine[Item]) HighWaterMark() int { return e.hwm }

// SetHighWaterMark sets the backpressure threshold in bytes.
func (e *WriteEngine[Item]) SetHighWaterMark(n int) { e.hwm = n }

// Ready drains the write buffer while its length is at or above the high-
// water mark, then reports readiness. It must be called (and succeed) before
// every StartSend. With a high-water mark of zero, Ready always drains the
// buffer fully before returning.
func (e *WriteEngine[Item]) Ready() error {
	if e.fused.io == nil || e.fused.codec == nil {
		return ErrInvalidArgument
	}
	for e.buf.Len() > 0 && e.buf.Len() >= e.hwm {
		if err := e.drainOnce(); err != nil {
			return err
		}
	}
	return nil
}

// StartSend encodes item into the tail of the write buffer. It does not
// touch the underlying I/O object, and must be preceded by a successful
// Ready.
func (e *WriteEngine[Item]) StartSend(item Item) error {
	if e.fused.io == nil || e.fused.codec == nil {
		return ErrInvalidArgument
	}
	return e.fused.codec.Encode(item, e.buf)
}

// Flush writes from the head of the buffer until it is empty, then flushes
// the underlying I/O object if it implements Flusher. Multiple Flush calls
// with an empty buffer are no-ops beyond a single pass-through flush.
func (e *WriteEngine[Item]) Flush() error {
	if e.fused.io == nil || e.fused.codec == nil {
		return ErrInvalidArgument
	}
	for !e.buf.Empty() {
		if err := e.drainOnce(); err != nil {
			return err
		}
	}
	if f, ok := e.fused.io.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes the underlying I/O object if it implements
// io.Closer.
func (e *WriteEngine[Item]) Close() error {
	if err := e.Flush(); err != nil {
		return err
	}
	if c, ok := e.fused.io.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Send is a convenience that performs Ready, StartSend, and Flush for one
// item, mirroring the original source's IterSinkExt::send.
func (e *WriteEngine[Item]) Send(item Item) error {
	if err := e.Ready(); err != nil {
		return err
	}
	if err := e.StartSend(item); err != nil {
		return err
	}
	return e.Flush()
}

// SendAll drains items into the sink, calling Ready before each StartSend
// and flushing once at the end, mirroring the original source's
// IterSinkExt::send_all.
func (e *WriteEngine[Item]) SendAll(items []Item) error {
	for _, item := range items {
		if err := e.Ready(); err != nil {
			return err
		}
		if err := e.StartSend(item); err != nil {
			return err
		}
	}
	return e.Flush()
}

// Release consumes the engine, returning the underlying Writer and Encoder
// unchanged. Any bytes still in the write buffer are discarded — callers
// that require durability must Flush first.
func (e *WriteEngine[Item]) Release() (io.Writer, Encoder[Item]) {
	return e.fused.release()
}

// IntoInner consumes the engine, returning just the underlying Writer.
func (e *WriteEngine[Item]) IntoInner() io.Writer {
	w, _ := e.Release()
	return w
}

// Encoder returns the underlying encoder.
func (e *WriteEngine[Item]) Encoder() Encoder[Item] { return e.fused.codec }

// Buffered reports how many encoded bytes are currently queued, awaiting
// drain to the underlying I/O object.
func (e *WriteEngine[Item]) Buffered() int { return e.buf.Len() }

// drainOnce performs a single write of the buffer's head and advances past
// whatever was accepted.
func (e *WriteEngine[Item]) drainOnce() error {
	n := e.buf.Len()
	if n == 0 {
		return nil
	}
	wn, err := writeOnce(e.fused.io, e.buf.Bytes()[:n], e.retryDelay)
	if wn > 0 {
		e.buf.Advance(wn)
	}
	if err == nil {
		return nil
	}
	if err == ErrWouldBlock || err == ErrMore {
		return err
	}
	if err == io.ErrShortWrite && wn == 0 {
		// writeOnce's broken-writer guard: the sink accepted zero bytes
		// while the write buffer was non-empty.
		return ErrUnexpectedEndOfInput
	}
	return err
}
