// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"fmt"
	"io"
)

// ReadSeeker implements io.ReadSeeker over in-memory data. Decoders that
// need to seek (go-audio) use it to wrap plain readers whose content was
// slurped into memory.
type ReadSeeker struct {
	data   []byte
	offset int64
}

func NewReadSeeker(data []byte) *ReadSeeker {
	return &ReadSeeker{data: data}
}

func (rs *ReadSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
