// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frame

import (
	"io"
	"runtime"
	"time"
)

// waitOnceOnWouldBlock implements the retry policy for iox.ErrWouldBlock,
// shared by the read and write engines. It reports whether the caller should
// retry the I/O call that just returned ErrWouldBlock.
//
// This single function is what makes the cooperative (nonblocking) and
// synchronous (blocking) operating modes share one decode/encode loop: the
// only thing that differs between them is whether this function retries
// in-process or tells the caller to surface ErrWouldBlock.
func waitOnceOnWouldBlock(retryDelay time.Duration) bool {
	if retryDelay < 0 {
		return false
	}
	if retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(retryDelay)
	return true
}

// readOnce reads into p, retrying according to retryDelay when the
// underlying Reader reports ErrWouldBlock. It guards against broken Readers
// that violate the io.Reader contract by returning (0, nil) on a non-empty
// buffer, which would otherwise spin the decode loop forever.
func readOnce(r io.Reader, p []byte, retryDelay time.Duration) (n int, err error) {
	for {
		n, err = r.Read(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 || err != ErrWouldBlock {
			return n, err
		}
		if !waitOnceOnWouldBlock(retryDelay) {
			return n, err
		}
	}
}

// writeOnce writes p, retrying according to retryDelay when the underlying
// Writer reports ErrWouldBlock. It guards against broken Writers that
// violate the io.Writer contract by returning (0, nil) on a non-empty
// buffer.
func writeOnce(w io.Writer, p []byte, retryDelay time.Duration) (n int, err error) {
	for {
		n, err = w.Write(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if n > 0 || err != ErrWouldBlock {
			return n, err
		}
		if !waitOnceOnWouldBlock(retryDelay) {
			return n, err
		}
	}
}
