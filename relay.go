// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import "io"

// Relay pipes decoded items from a ReadEngine to a WriteEngine, item by
// item, preserving the teacher's two-phase resumable Forwarder contract
// (forward.go): on ErrWouldBlock or ErrMore the caller retries the same
// ForwardOnce call on the same Relay, and in-flight progress is preserved
// internally: an item already decoded is not re-decoded, and an item already
// encoded into dst's write buffer is only flushed, not encoded again.
type Relay[Item any] struct {
	src *ReadEngine[Item]
	dst *WriteEngine[Item]

	hasPending bool
	pending    Item
	encoded    bool
}

// NewRelay constructs a Relay forwarding items from src to dst.
func NewRelay[Item any](dst *WriteEngine[Item], src *ReadEngine[Item]) *Relay[Item] {
	return &Relay[Item]{src: src, dst: dst}
}

// ForwardOnce forwards at most one item: read-then-write, in two phases.
//
// It returns (true, nil) once an item has been fully read from src and
// handed to dst's write buffer (flushed). It returns (false, io.EOF) once
// src is exhausted. On ErrWouldBlock or ErrMore from either phase, it
// returns (false, err) with the in-flight item (if one was decoded or
// encoded) preserved for the next call. dst's Ready is called before src is
// read, so an item is never left decoded but not yet encoded by an error
// from dst.
func (r *Relay[Item]) ForwardOnce() (bool, error) {
	if !r.encoded {
		if err := r.dst.Ready(); err != nil {
			return false, err
		}
		if !r.hasPending {
			item, err := r.src.Next()
			if err != nil {
				return false, err
			}
			r.pending = item
			r.hasPending = true
		}
		if err := r.dst.StartSend(r.pending); err != nil {
			return false, err
		}
		var zero Item
		r.pending = zero
		r.hasPending = false
		r.encoded = true
	}

	if err := r.dst.Flush(); err != nil {
		return false, err
	}
	r.encoded = false
	return true, nil
}

// Forward forwards items from src to dst until src is exhausted. It returns
// the number of items forwarded and nil on clean exhaustion. On
// ErrWouldBlock/ErrMore, or any other error, it returns the count forwarded
// so far together with that error; it does not retry. An item already
// encoded into dst's write buffer stays there, so a later Forward call on the
// same engines continues without losing it.
func Forward[Item any](dst *WriteEngine[Item], src *ReadEngine[Item]) (int64, error) {
	rl := NewRelay(dst, src)
	var total int64
	for {
		ok, err := rl.ForwardOnce()
		if ok {
			total++
			continue
		}
		if err == io.EOF {
			return total, nil
		}
		if err == ErrWouldBlock || err == ErrMore {
			// Cooperative caller: report progress-so-far and let the
			// caller retry later. A blocking-mode src/dst never reaches
			// this branch since readOnce/writeOnce already retried.
			return total, err
		}
		return total, err
	}
}
