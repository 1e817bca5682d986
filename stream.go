package id3field

import (
	"io"

	"github.com/simonhull/id3field/internal/binary"
)

// Reader is the bounded sequential byte source Parse consumes.
type Reader = binary.Reader

// Writer is the sequential byte sink Render writes to.
type Writer = binary.Writer

// NewReader creates a Reader that will consume at most limit bytes from r.
func NewReader(r io.Reader, limit int64) *Reader {
	return binary.NewReader(r, limit)
}

// NewBytesReader creates a Reader over an in-memory payload.
func NewBytesReader(b []byte) *Reader {
	return binary.NewBytesReader(b)
}

// NewWriter creates a Writer over w. A short write on w is a failure.
func NewWriter(w io.Writer) *Writer {
	return binary.NewWriter(w)
}
