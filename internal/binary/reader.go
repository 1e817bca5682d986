// Package binary provides the bounded sequential byte-stream primitives that
// field Parse and Render operate against.
package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// TruncatedError is returned when a bounded read asks for more bytes than the
// stream has left. It signals malformed or cut-off input, not an I/O fault.
type TruncatedError struct {
	What string
	Want int
	Have int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: need %d bytes for %s, %d remaining", e.Want, e.What, e.Have)
}

// Reader is a sequential byte source with a fixed budget of remaining bytes.
//
// End-of-input is distinct from error: a read that exceeds the budget, or
// that fits the budget but hits an unexpected EOF, fails with
// *TruncatedError; any other failure is the underlying reader's error.
type Reader struct {
	r         io.Reader
	remaining int64
	offset    int64
}

// NewReader creates a Reader that will consume at most limit bytes from r.
func NewReader(r io.Reader, limit int64) *Reader {
	return &Reader{r: r, remaining: limit}
}

// NewBytesReader creates a Reader over an in-memory payload.
func NewBytesReader(b []byte) *Reader {
	return NewReader(bytes.NewReader(b), int64(len(b)))
}

// Remaining returns the number of bytes left in the read budget.
func (r *Reader) Remaining() int64 {
	return r.remaining
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull fills buf from the stream, with context for error messages.
func (r *Reader) ReadFull(buf []byte, what string) error {
	if int64(len(buf)) > r.remaining {
		return &TruncatedError{What: what, Want: len(buf), Have: r.remaining}
	}

	n, err := io.ReadFull(r.r, buf)
	r.remaining -= int64(n)
	r.offset += int64(n)

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &TruncatedError{What: what, Want: len(buf), Have: int64(n)}
	}
	if err != nil {
		return fmt.Errorf("read %s at offset %d: %w", what, r.offset, err)
	}
	return nil
}

// ReadAll consumes and returns every byte left in the read budget.
// Returns an empty slice, not an error, when the budget is already spent.
func (r *Reader) ReadAll(what string) ([]byte, error) {
	buf := make([]byte, r.remaining)
	if len(buf) == 0 {
		return buf, nil
	}
	if err := r.ReadFull(buf, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Skip discards n bytes from the stream.
func (r *Reader) Skip(n int64, what string) error {
	if n > r.remaining {
		return &TruncatedError{What: what, Want: int(n), Have: r.remaining}
	}

	discarded, err := io.CopyN(io.Discard, r.r, n)
	r.remaining -= discarded
	r.offset += discarded

	if err == io.EOF {
		return &TruncatedError{What: what, Want: int(n), Have: discarded}
	}
	if err != nil {
		return fmt.Errorf("skip %s at offset %d: %w", what, r.offset, err)
	}
	return nil
}

// ReadValue reads a numeric value in big-endian byte order and advances the
// stream. T must be uint8, uint16, uint32, or uint64.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf := make([]byte, size)
	if err := r.ReadFull(buf, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}
