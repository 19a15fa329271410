// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"code.hybscloud.com/frame"
)

// LinesCodec splits a byte stream into newline-terminated UTF-8 messages.
// The terminating '\n' is part of the delivered message; callers of Encode
// are responsible for terminating their own lines.
type LinesCodec struct{}

// Decode locates the first '\n', splits the buffer up to and including it,
// and returns the prefix as a UTF-8 string.
func (LinesCodec) Decode(src *frame.Buffer) (string, bool, error) {
	pos := bytes.IndexByte(src.Bytes(), '\n')
	if pos < 0 {
		return "", false, nil
	}
	line := src.Split(pos + 1)
	if !utf8.Valid(line.Bytes()) {
		return "", false, fmt.Errorf("frame/codec: invalid UTF-8 in line")
	}
	return line.String(), true, nil
}

// Encode appends item's bytes verbatim.
func (LinesCodec) Encode(item string, dst *frame.Buffer) error {
	dst.Append([]byte(item))
	return nil
}
