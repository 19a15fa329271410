// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

// fused couples an I/O object with a codec value into a single unit, owned by
// exactly one engine. It is the Data Model's "Fused pair": constructed once,
// released to return both halves unchanged. Grounded on the original source's
// Fuse<T, U> (src/fuse.rs); Go has no Deref, so passthrough to the I/O object
// happens through explicit accessor methods on the owning engine instead of
// automatic dereferencing.
type fused[IO, Codec any] struct {
	io    IO
	codec Codec
}

func newFused[IO, Codec any](io IO, codec Codec) fused[IO, Codec] {
	return fused[IO, Codec]{io: io, codec: codec}
}

// release returns the I/O object and codec unchanged.
func (f fused[IO, Codec]) release() (IO, Codec) {
	return f.io, f.codec
}
