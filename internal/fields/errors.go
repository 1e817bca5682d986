package fields

import (
	"fmt"

	"github.com/simonhull/id3field/internal/textenc"
)

// WrongKindError is returned when an operation is invoked on a field variant
// that does not support it. It always indicates a caller bug; the field is
// left unmodified.
type WrongKindError struct {
	Op   string
	Kind Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("%s: operation not supported for %s field", e.Op, e.Kind)
}

// IndexError is returned when a text item index is out of range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("text item index %d out of range (field has %d items)", e.Index, e.Count)
}

// UnsupportedEncodingError is returned by SetEncoding when the requested
// encoding is outside the field's declared capability.
type UnsupportedEncodingError struct {
	Encoding textenc.Encoding
	Kind     Kind
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("encoding %s not supported for %s field", e.Encoding, e.Kind)
}

// MalformedInputError is returned by Parse when the stream's contents are
// inconsistent with the field's declared kind and encoding. The field's
// content is reset to the kind's empty state; its identity, kind, and
// encoding remain valid.
type MalformedInputError struct {
	Kind     Kind
	Encoding textenc.Encoding
	Reason   string
}

func (e *MalformedInputError) Error() string {
	if e.Kind.text() {
		return fmt.Sprintf("malformed %s field data (%s): %s", e.Kind, e.Encoding, e.Reason)
	}
	return fmt.Sprintf("malformed %s field data: %s", e.Kind, e.Reason)
}

// IOError wraps a failure from an underlying reader, writer, or file
// operation. The collaborator's error is propagated unchanged via Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
