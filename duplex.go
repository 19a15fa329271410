// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import "io"

// Duplex pairs a ReadEngine and a WriteEngine, each built over the same
// io.ReadWriter and the same Codec value, so reads and writes share a single
// underlying I/O object and a single Codec instance while each side keeps its
// own buffer. Grounded on the original source's
// Framed::new (framed_read_2(framed_write_2(Fuse(inner, codec)))) and the
// teacher's ReadWriter struct embedding a shared *framer.
type Duplex[In, Out any] struct {
	rd *ReadEngine[In]
	wr *WriteEngine[Out]
}

// NewDuplex constructs a Duplex reading and writing through io, using codec
// for both directions.
func NewDuplex[In, Out any](io_ io.ReadWriter, codec Codec[In, Out], opts ...Option) *Duplex[In, Out] {
	return &Duplex[In, Out]{
		rd: NewReadEngine[In](io_, codec, opts...),
		wr: NewWriteEngine[Out](io_, codec, opts...),
	}
}

// Next decodes and returns the next item, exactly as ReadEngine.Next.
func (d *Duplex[In, Out]) Next() (In, error) { return d.rd.Next() }

// Ready forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) Ready() error { return d.wr.Ready() }

// StartSend forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) StartSend(item Out) error { return d.wr.StartSend(item) }

// Flush forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) Flush() error { return d.wr.Flush() }

// Close forwards to the inner WriteEngine, flushing and closing the shared
// I/O object.
func (d *Duplex[In, Out]) Close() error { return d.wr.Close() }

// Send forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) Send(item Out) error { return d.wr.Send(item) }

// SendAll forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) SendAll(items []Out) error { return d.wr.SendAll(items) }

// HighWaterMark forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) HighWaterMark() int { return d.wr.HighWaterMark() }

// SetHighWaterMark forwards to the inner WriteEngine.
func (d *Duplex[In, Out]) SetHighWaterMark(n int) { d.wr.SetHighWaterMark(n) }

// Codec returns the shared codec. Both the read and write sides use the same
// value, so Codec and Decoder/Encoder-style accessors all observe it.
func (d *Duplex[In, Out]) Codec() Codec[In, Out] {
	return d.rd.Decoder().(Codec[In, Out])
}

// Reader exposes the underlying I/O object's Reader half.
func (d *Duplex[In, Out]) Reader() io.Reader { return d.rd.fused.io }

// Writer exposes the underlying I/O object's Writer half.
func (d *Duplex[In, Out]) Writer() io.Writer { return d.wr.fused.io }

// Release consumes the Duplex, returning the shared I/O object and codec.
// Any bytes still buffered on either side are discarded.
func (d *Duplex[In, Out]) Release() (io.ReadWriter, Codec[In, Out]) {
	io_, codec := d.rd.Release()
	// The read and write engines were constructed over the same io.ReadWriter
	// and codec value (see NewDuplex); recovering the concrete ReadWriter
	// requires the caller supplied one, which NewDuplex's signature enforces.
	rw, _ := io_.(io.ReadWriter)
	return rw, codec.(Codec[In, Out])
}

// IntoInner consumes the Duplex, returning just the shared I/O object.
func (d *Duplex[In, Out]) IntoInner() io.ReadWriter {
	rw, _ := d.Release()
	return rw
}
