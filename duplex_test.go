// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame_test

import (
	"errors"
	"io"
	"net"
	"testing"

	"code.hybscloud.com/frame"
	"code.hybscloud.com/frame/codec"
)

func TestDuplexOverInMemoryPipeRoundTrips(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	da := frame.NewDuplex[string, string](a, codec.LinesCodec{})
	db := frame.NewDuplex[string, string](b, codec.LinesCodec{})

	done := make(chan error, 1)
	go func() {
		done <- da.Send("ping\n")
	}()

	got, err := db.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != "ping\n" {
		t.Fatalf("got=%q want=%q", got, "ping\n")
	}
	if err := <-done; err != nil {
		t.Fatalf("send: %v", err)
	}

	done = make(chan error, 1)
	go func() {
		done <- db.Send("pong\n")
	}()
	got, err = da.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != "pong\n" {
		t.Fatalf("got=%q want=%q", got, "pong\n")
	}
	if err := <-done; err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestDuplexReaderAndWriterShareOneIOObject(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	d := frame.NewDuplex[string, string](a, codec.LinesCodec{})
	if any(d.Reader()) != any(d.Writer()) {
		t.Fatalf("Duplex should expose the same underlying object for Reader and Writer")
	}
}

func TestDuplexCloseClosesUnderlyingIO(t *testing.T) {
	a, b := net.Pipe()
	defer b.Close()

	d := frame.NewDuplex[string, string](a, codec.LinesCodec{})
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := a.Write([]byte("x")); err == nil {
		t.Fatalf("expected write on closed pipe to fail")
	}
}

func TestDuplexNextPropagatesEOF(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()

	d := frame.NewDuplex[string, string](a, codec.LinesCodec{})
	if err := b.Close(); err != nil {
		t.Fatalf("close peer: %v", err)
	}
	if _, err := d.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want=io.EOF", err)
	}
}
