// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"io"

	"github.com/hashicorp/go-msgpack/v2/codec"

	"code.hybscloud.com/frame"
)

// StreamCodec is a self-delimiting codec: msgpack values are themselves
// self-terminating on the wire, so no length prefix is needed. Decode hands
// the live buffer to a streaming msgpack decoder as a byte slice (not an
// io.Reader, which would let the decoder's own read-ahead buffering consume
// bytes belonging to the next value) and recovers the number of bytes
// actually consumed via NumBytesRead, the same role the original's cbor.rs
// gets from serde_cbor's from_slice reporting how far the cursor advanced.
//
// A StreamCodec value is not safe for concurrent use; it carries its own
// codec.MsgpackHandle so Packed can be toggled per instance.
type StreamCodec[T any] struct {
	handle codec.MsgpackHandle
}

// NewStreamCodec returns a ready-to-use StreamCodec for T, default unpacked
// (struct fields encoded as maps).
func NewStreamCodec[T any]() *StreamCodec[T] { return &StreamCodec[T]{} }

// Packed toggles whether struct values are encoded as compact arrays
// (true) instead of field-named maps (false, the default).
func (c *StreamCodec[T]) Packed(packed bool) {
	c.handle.StructToArray = packed
}

// Decode attempts to streaming-decode one T from the front of src. An
// io.EOF or io.ErrUnexpectedEOF from the underlying decoder means the
// buffer doesn't yet hold a complete value; every other error is
// ill-formed input.
func (c *StreamCodec[T]) Decode(src *frame.Buffer) (T, bool, error) {
	var zero T
	if src.Empty() {
		return zero, false, nil
	}

	var out T
	dec := codec.NewDecoderBytes(src.Bytes(), &c.handle)
	err := dec.Decode(&out)
	consumed := dec.NumBytesRead()

	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return zero, false, nil
		}
		return zero, false, err
	}
	if consumed > 0 {
		src.Advance(consumed)
	}
	return out, true, nil
}

// Encode msgpack-marshals item directly onto dst; the resulting bytes are
// self-delimiting so no framing of any kind is added.
func (c *StreamCodec[T]) Encode(item T, dst *frame.Buffer) error {
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, &c.handle).Encode(item); err != nil {
		return err
	}
	dst.Append(buf)
	return nil
}
