// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports an invalid configuration or a nil I/O object.
	ErrInvalidArgument = errors.New("frame: invalid argument")

	// ErrUnexpectedEndOfInput reports that the byte source reached EOF with
	// bytes left in the read buffer that the decoder could not turn into a
	// final item, or that the byte sink accepted zero bytes while the write
	// buffer was non-empty.
	ErrUnexpectedEndOfInput = errors.New("frame: unexpected end of input")

	// ErrClosed reports an operation on a closed engine. The engines in this
	// package do not track closure and do not return it: after Close, their
	// operations reach the closed I/O object, which reports its own error.
	ErrClosed = errors.New("frame: engine closed")
)

// These are re-exported so callers can reference the semantic control-flow
// signals without importing iox directly, matching the teacher's framer.go.
var (
	// ErrWouldBlock means "no further progress without waiting". It is an
	// expected, non-failure control-flow signal in the cooperative (nonblock)
	// operating mode; see WithNonblock.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more completions will
	// follow from the same ongoing operation".
	ErrMore = iox.ErrMore
)
