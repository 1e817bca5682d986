package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer is a sequential byte sink with position tracking.
//
// A short write is treated as failure; the Writer assumes no partial-write
// recovery on the part of its callers.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	if err != nil {
		return err
	}
	if n < len(b) {
		return fmt.Errorf("short write at offset %d: %w", w.offset, io.ErrShortWrite)
	}
	return nil
}

// WriteString writes a string as bytes to the underlying writer.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteValue writes a numeric value in big-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func WriteValue[T uint8 | uint16 | uint32 | uint64](w *Writer, val T) error {
	var buf []byte

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf = []byte{byte(val)}
	case uint16:
		buf = make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(val))
	case uint32:
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(val))
	case uint64:
		buf = make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(val))
	}

	return w.WriteBytes(buf)
}
