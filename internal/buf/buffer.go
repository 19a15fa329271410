// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package buf provides the growable, front-splittable byte buffer used by the
// read and write engines, plus the immutable byte handle codecs hand out.
package buf

// InitialCapacity is the capacity a fresh Buffer is allocated with.
const InitialCapacity = 8 * 1024

// Buffer is a growable, append-only-at-the-tail, consume-only-at-the-head
// byte buffer. It is owned by exactly one engine instance; it is never shared
// between concurrent callers.
type Buffer struct {
	b []byte
}

// New returns an empty Buffer with the given initial capacity.
func New(capHint int) *Buffer {
	if capHint <= 0 {
		capHint = InitialCapacity
	}
	return &Buffer{b: make([]byte, 0, capHint)}
}

// Len reports the number of unconsumed bytes currently buffered.
func (buf *Buffer) Len() int { return len(buf.b) }

// Empty reports whether the buffer currently holds no bytes.
func (buf *Buffer) Empty() bool { return len(buf.b) == 0 }

// Bytes returns the buffer's current contents. The returned slice is only
// valid until the next call to Append, Split, or Advance.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Append copies p onto the tail of the buffer.
func (buf *Buffer) Append(p []byte) {
	buf.b = append(buf.b, p...)
}

// Split removes the first n bytes from the buffer and returns them as an
// immutable, independently-owned Bytes handle. It panics if n exceeds Len.
func (buf *Buffer) Split(n int) Bytes {
	if n < 0 || n > len(buf.b) {
		panic("buf: Split out of range")
	}
	out := make([]byte, n)
	copy(out, buf.b[:n])
	buf.Advance(n)
	return Bytes{b: out}
}

// Advance drops the first n bytes from the buffer without returning them. It
// panics if n exceeds Len.
func (buf *Buffer) Advance(n int) {
	if n < 0 || n > len(buf.b) {
		panic("buf: Advance out of range")
	}
	remaining := copy(buf.b, buf.b[n:])
	buf.b = buf.b[:remaining]
}

// Bytes is an owned, immutable view produced by freezing a front-split of a
// Buffer. It is the default item type for codecs that deal in raw bytes.
type Bytes struct {
	b []byte
}

// BytesOf wraps an existing slice as a Bytes handle without copying. Callers
// must not mutate p afterwards.
func BytesOf(p []byte) Bytes { return Bytes{b: p} }

// Len returns the number of bytes held.
func (h Bytes) Len() int { return len(h.b) }

// Bytes returns the underlying byte slice. Callers must treat it as read-only.
func (h Bytes) Bytes() []byte { return h.b }

// String returns the bytes reinterpreted as a string, copying once.
func (h Bytes) String() string { return string(h.b) }
