// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/frame"
	"code.hybscloud.com/frame/codec"
)

func lengthFrame(payload string) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(len(payload)))
	return append(out[:], payload...)
}

func TestReadEngineDecodesMultipleFramesAcrossReads(t *testing.T) {
	var raw bytes.Buffer
	raw.Write(lengthFrame("hello"))
	raw.Write(lengthFrame("world"))

	e := frame.NewReadEngine[frame.Bytes](&raw, codec.NewLengthCodec())

	item, err := e.Next()
	if err != nil {
		t.Fatalf("next[0]: %v", err)
	}
	if item.String() != "hello" {
		t.Fatalf("item[0]=%q want=%q", item.String(), "hello")
	}

	item, err = e.Next()
	if err != nil {
		t.Fatalf("next[1]: %v", err)
	}
	if item.String() != "world" {
		t.Fatalf("item[1]=%q want=%q", item.String(), "world")
	}

	if _, err := e.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("next[2] err=%v want=io.EOF", err)
	}
}

func TestReadEngineAssemblesFrameSplitAcrossReads(t *testing.T) {
	frame1 := lengthFrame("split-across-reads")
	r := &scriptedReader{steps: []struct {
		b   []byte
		err error
	}{
		{b: frame1[:5]},
		{b: frame1[5:12]},
		{b: frame1[12:]},
	}}

	e := frame.NewReadEngine[frame.Bytes](r, codec.NewLengthCodec())
	item, err := e.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if item.String() != "split-across-reads" {
		t.Fatalf("item=%q want=%q", item.String(), "split-across-reads")
	}
	if _, err := e.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("final err=%v want=io.EOF", err)
	}
}

func TestReadEngineEmptyInputIsImmediateEOF(t *testing.T) {
	e := frame.NewReadEngine[frame.Bytes](bytes.NewReader(nil), codec.NewLengthCodec())
	if _, err := e.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want=io.EOF", err)
	}
}

func TestReadEngineTruncatedFrameAtEOFIsUnexpectedEndOfInput(t *testing.T) {
	full := lengthFrame("truncated-payload")
	truncated := full[:len(full)-3]
	e := frame.NewReadEngine[frame.Bytes](bytes.NewReader(truncated), codec.NewLengthCodec())
	if _, err := e.Next(); !errors.Is(err, frame.ErrUnexpectedEndOfInput) {
		t.Fatalf("err=%v want=ErrUnexpectedEndOfInput", err)
	}
}

func TestReadEngineBytesCodecEmitsFinalPartialChunkAtEOF(t *testing.T) {
	e := frame.NewReadEngine[frame.Bytes](bytes.NewReader([]byte("leftover")), codec.BytesCodec{})
	item, err := e.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if item.String() != "leftover" {
		t.Fatalf("item=%q want=%q", item.String(), "leftover")
	}
	if _, err := e.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("final err=%v want=io.EOF", err)
	}
}

func TestReadEngineNonblockReturnsErrWouldBlock(t *testing.T) {
	frame1 := lengthFrame("waits-for-more")
	r := &scriptedReader{steps: []struct {
		b   []byte
		err error
	}{
		{b: frame1[:4]},
		{b: nil, err: frame.ErrWouldBlock},
	}}

	e := frame.NewReadEngine[frame.Bytes](r, codec.NewLengthCodec(), frame.WithNonblock())
	if _, err := e.Next(); !errors.Is(err, frame.ErrWouldBlock) {
		t.Fatalf("err=%v want=ErrWouldBlock", err)
	}
}

func TestReadEngineBrokenReaderNoProgressSurfacesErrNoProgress(t *testing.T) {
	e := frame.NewReadEngine[frame.Bytes](&noProgressReader{}, codec.NewLengthCodec())
	if _, err := e.Next(); !errors.Is(err, io.ErrNoProgress) {
		t.Fatalf("err=%v want=io.ErrNoProgress", err)
	}
}

func TestReadEngineLinesCodecUnterminatedTailIsUnexpectedEndOfInput(t *testing.T) {
	e := frame.NewReadEngine[string](bytes.NewBufferString("no newline here"), codec.LinesCodec{})
	if _, err := e.Next(); !errors.Is(err, frame.ErrUnexpectedEndOfInput) {
		t.Fatalf("err=%v want=ErrUnexpectedEndOfInput", err)
	}
}

func TestReadEngineRejectsNilIO(t *testing.T) {
	var e frame.ReadEngine[frame.Bytes]
	if _, err := e.Next(); !errors.Is(err, frame.ErrInvalidArgument) {
		t.Fatalf("err=%v want=ErrInvalidArgument", err)
	}
}
