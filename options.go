// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import "time"

// DefaultHighWaterMark is the write engine's default backpressure threshold
// in bytes (≈ 60% of a typical OS send-buffer size).
const DefaultHighWaterMark = 131072

// Options configures a ReadEngine, WriteEngine, or Duplex.
type Options struct {
	// HighWaterMark is the write buffer length, in bytes, at or above which
	// Ready refuses to report readiness until the buffer has drained below
	// it. Only meaningful for write-capable engines.
	HighWaterMark int

	// ReadBufferHint is the initial capacity of the read buffer.
	ReadBufferHint int

	// WriteBufferHint is the initial capacity of the write buffer.
	WriteBufferHint int

	// RetryDelay controls how an engine handles iox.ErrWouldBlock from the
	// underlying I/O object:
	//   - negative: cooperative/nonblocking — return ErrWouldBlock immediately.
	//   - zero: yield (runtime.Gosched) and retry in-process.
	//   - positive: sleep for the duration and retry in-process.
	// Zero or positive give the engine blocking semantics (§2, §9 of the
	// framing specification this package implements) built from the same
	// decode/encode loop as the nonblocking mode.
	RetryDelay time.Duration
}

var defaultOptions = Options{
	HighWaterMark:   DefaultHighWaterMark,
	ReadBufferHint:  0,
	WriteBufferHint: 0,
	RetryDelay:      -1, // default: nonblock, matching the teacher's framer.
}

// Option configures Options.
type Option func(*Options)

// WithHighWaterMark sets the write engine's backpressure threshold in bytes.
func WithHighWaterMark(n int) Option {
	return func(o *Options) { o.HighWaterMark = n }
}

// WithReadBufferHint sets the read buffer's initial capacity.
func WithReadBufferHint(n int) Option {
	return func(o *Options) { o.ReadBufferHint = n }
}

// WithWriteBufferHint sets the write buffer's initial capacity.
func WithWriteBufferHint(n int) Option {
	return func(o *Options) { o.WriteBufferHint = n }
}

// WithRetryDelay sets the retry/wait policy used when the underlying I/O
// object returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock,
// giving the synchronous operating mode of §2.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces the cooperative/asynchronous operating mode: engines
// return ErrWouldBlock immediately instead of retrying in-process.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
