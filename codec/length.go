// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"code.hybscloud.com/frame"
)

const lengthHeaderSize = 8

// LengthCodec frames messages with an 8-byte big-endian length header
// followed by the payload: u64 big-endian length ‖ payload[length].
//
// Decode consumes the 8-byte header from the front of the buffer as soon as
// it is available, caching the parsed length on the codec value itself until
// the full payload has arrived (see DESIGN.md's Open Question decision #1);
// a LengthCodec value must not be shared between concurrently-decoding
// streams, matching §5's "not shared between concurrent workers".
type LengthCodec struct {
	havePending bool
	pendingLen  uint64
}

// NewLengthCodec returns a ready-to-use LengthCodec.
func NewLengthCodec() *LengthCodec { return &LengthCodec{} }

// Decode implements the framing described on LengthCodec.
func (c *LengthCodec) Decode(src *frame.Buffer) (frame.Bytes, bool, error) {
	var zero frame.Bytes
	if !c.havePending {
		if src.Len() < lengthHeaderSize {
			return zero, false, nil
		}
		header := src.Split(lengthHeaderSize)
		c.pendingLen = binary.BigEndian.Uint64(header.Bytes())
		c.havePending = true
	}
	if uint64(src.Len()) < c.pendingLen {
		return zero, false, nil
	}
	payload := src.Split(int(c.pendingLen))
	c.havePending = false
	c.pendingLen = 0
	return payload, true, nil
}

// Encode appends the 8-byte length header, then the payload.
func (c *LengthCodec) Encode(item frame.Bytes, dst *frame.Buffer) error {
	var header [lengthHeaderSize]byte
	binary.BigEndian.PutUint64(header[:], uint64(item.Len()))
	dst.Append(header[:])
	dst.Append(item.Bytes())
	return nil
}
