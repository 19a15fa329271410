// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/hashicorp/go-msgpack/v2/codec"

	"code.hybscloud.com/frame"
)

// recordHandle is a package-level shared handle, mirroring msgpackrpc's
// package-level msgpackHandle: a *codec.MsgpackHandle carries no per-call
// state and is safe to share across RecordCodec values.
var recordHandle = &codec.MsgpackHandle{}

// RecordCodec is a self-describing codec: each item is msgpack-marshaled on
// its own, length-prefixed so the read side knows exactly how many bytes to
// buffer before attempting to unmarshal. It layers directly over LengthCodec,
// the way the original's serde.rs layers bincode over LengthCodec.
type RecordCodec[T any] struct {
	length LengthCodec
}

// NewRecordCodec returns a ready-to-use RecordCodec for T.
func NewRecordCodec[T any]() *RecordCodec[T] { return &RecordCodec[T]{} }

// Decode waits for one complete length-prefixed record, then msgpack-decodes
// it into a T.
func (c *RecordCodec[T]) Decode(src *frame.Buffer) (T, bool, error) {
	var zero T
	payload, ok, err := c.length.Decode(src)
	if err != nil || !ok {
		return zero, ok, err
	}
	var out T
	if err := codec.NewDecoderBytes(payload.Bytes(), recordHandle).Decode(&out); err != nil {
		return zero, false, err
	}
	return out, true, nil
}

// Encode msgpack-marshals item and writes it length-prefixed.
func (c *RecordCodec[T]) Encode(item T, dst *frame.Buffer) error {
	buf, err := marshalRecord(item)
	if err != nil {
		return err
	}
	return c.length.Encode(frame.BytesOf(buf), dst)
}

func marshalRecord(item any) ([]byte, error) {
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, recordHandle).Encode(item); err != nil {
		return nil, err
	}
	return buf, nil
}
