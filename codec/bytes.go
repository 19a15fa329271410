// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec provides the reference codecs that exercise the framing
// contract: raw bytes, newline-delimited text, length-prefixed bytes, and two
// parameterized codecs over self-describing / self-delimiting serialization
// formats.
package codec

import "code.hybscloud.com/frame"

// BytesCodec is a pass-through codec: decode returns all currently buffered
// bytes as one item, encode appends the item's bytes verbatim. It is the
// simplest codec and the one that gives message boundaries that are "whatever
// the I/O object happens to return per read".
type BytesCodec struct{}

// Decode returns all buffered bytes as a single item, or no item if the
// buffer is currently empty.
func (BytesCodec) Decode(src *frame.Buffer) (frame.Bytes, bool, error) {
	if src.Empty() {
		var zero frame.Bytes
		return zero, false, nil
	}
	return src.Split(src.Len()), true, nil
}

// DecodeEOF emits whatever remains in the buffer as one final item, rather
// than reporting ErrUnexpectedEndOfInput: a raw byte stream has no concept of
// a message left incomplete by EOF.
func (BytesCodec) DecodeEOF(src *frame.Buffer) (frame.Bytes, bool, error) {
	return BytesCodec{}.Decode(src)
}

// Encode appends item's bytes to the write buffer unmodified.
func (BytesCodec) Encode(item frame.Bytes, dst *frame.Buffer) error {
	dst.Append(item.Bytes())
	return nil
}
