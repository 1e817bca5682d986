package id3field

import (
	"fmt"

	"github.com/simonhull/id3field/internal/fields"
	"github.com/simonhull/id3field/internal/textenc"
)

// WrongKindError is an alias to fields.WrongKindError.
// Re-exporting from internal/fields to keep the public API in one package.
type WrongKindError = fields.WrongKindError

// IndexError is an alias to fields.IndexError.
// Re-exporting from internal/fields to keep the public API in one package.
type IndexError = fields.IndexError

// UnsupportedEncodingError is an alias to fields.UnsupportedEncodingError.
// Re-exporting from internal/fields to keep the public API in one package.
type UnsupportedEncodingError = fields.UnsupportedEncodingError

// MalformedInputError is an alias to fields.MalformedInputError.
// Re-exporting from internal/fields to keep the public API in one package.
type MalformedInputError = fields.MalformedInputError

// IOError is an alias to fields.IOError.
// Re-exporting from internal/fields to keep the public API in one package.
type IOError = fields.IOError

// DecodeError is an alias to textenc.DecodeError.
// Re-exporting from internal/textenc to keep the public API in one package.
type DecodeError = textenc.DecodeError

// UnknownFrameError is returned when a frame identity is not present in the
// frame metadata catalog.
type UnknownFrameError struct {
	Frame FrameID
}

func (e *UnknownFrameError) Error() string {
	return fmt.Sprintf("frame %q not in catalog", e.Frame)
}
