package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriteValue(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	if err := WriteValue[uint8](w, 0x01); err != nil {
		t.Fatalf("WriteValue[uint8] failed: %v", err)
	}
	if err := WriteValue[uint16](w, 0x0203); err != nil {
		t.Fatalf("WriteValue[uint16] failed: %v", err)
	}
	if err := WriteValue[uint32](w, 0x04050607); err != nil {
		t.Fatalf("WriteValue[uint32] failed: %v", err)
	}

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("written bytes = %v, want %v", buf.Bytes(), want)
	}
	if w.Offset() != 7 {
		t.Errorf("Offset() = %d, want 7", w.Offset())
	}
}

func TestWriteBytes_ShortWrite(t *testing.T) {
	w := NewWriter(&shortWriter{max: 2})

	err := w.WriteBytes([]byte{1, 2, 3, 4})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("error = %v, want io.ErrShortWrite", err)
	}
}

func TestWriteBytes_PropagatesWriterError(t *testing.T) {
	wantErr := errors.New("sink closed")
	w := NewWriter(&failingWriter{err: wantErr})

	if err := w.WriteBytes([]byte{1}); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

// shortWriter accepts at most max bytes per call without reporting an error.
type shortWriter struct {
	max int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if len(p) > s.max {
		return s.max, nil
	}
	return len(p), nil
}

// failingWriter fails every write with a fixed error.
type failingWriter struct {
	err error
}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}
