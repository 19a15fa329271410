// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import "code.hybscloud.com/frame/internal/buf"

// Buffer is the growable, front-splittable byte buffer a Decoder consumes
// from and an Encoder appends to. It is exactly the read buffer (for
// decoding) or the write buffer (for encoding) of the owning engine.
type Buffer = buf.Buffer

// Bytes is an owned, immutable byte handle produced by splitting a Buffer.
// It is the item type of the reference byte-oriented codecs.
type Bytes = buf.Bytes

// BytesOf wraps an existing slice as a Bytes handle without copying. Callers
// must not mutate p afterwards.
func BytesOf(p []byte) Bytes { return buf.BytesOf(p) }

// Decoder extracts discrete Item values out of a growing byte buffer.
//
// Decode is called with the engine's read buffer. It must either:
//   - return a zero Item, false, nil: not enough bytes buffered yet, read more;
//   - return an Item, true, nil: one item decoded, having removed the
//     corresponding prefix from src (via src.Split or src.Advance);
//   - return a zero Item, false, err: the buffered bytes are ill-formed.
//
// Decode must not be called reentrantly, and a Decoder value is never shared
// between concurrently-running engines.
type Decoder[Item any] interface {
	Decode(src *Buffer) (Item, bool, error)
}

// EOFDecoder is an optional extension a Decoder can implement to customize
// behavior when the byte source has signalled end-of-input but the read
// buffer is still non-empty. When absent, the read engine defers to Decode.
type EOFDecoder[Item any] interface {
	DecodeEOF(src *Buffer) (Item, bool, error)
}

// Encoder serializes an Item onto the tail of a growing byte buffer.
//
// Encode must not be called reentrantly, and an Encoder value is never shared
// between concurrently-running engines.
type Encoder[Item any] interface {
	Encode(item Item, dst *Buffer) error
}

// Codec pairs a Decoder and an Encoder over one underlying byte stream, as
// consumed by Duplex. In is the type Decode produces; Out is the type Encode
// consumes. They are commonly, but not necessarily, the same type.
type Codec[In, Out any] interface {
	Decoder[In]
	Encoder[Out]
}

// decodeEOF invokes the codec's EOFDecoder override if present, otherwise
// falls back to plain Decode, per §4.1's documented default behavior.
func decodeEOF[Item any](d Decoder[Item], src *Buffer) (Item, bool, error) {
	if eofd, ok := d.(EOFDecoder[Item]); ok {
		return eofd.DecodeEOF(src)
	}
	return d.Decode(src)
}
