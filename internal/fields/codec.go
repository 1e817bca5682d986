package fields

import (
	"errors"

	"github.com/simonhull/id3field/internal/binary"
	"github.com/simonhull/id3field/internal/textenc"
)

// Wire layout, by kind:
//
//   - integer: 4 bytes, big-endian
//   - text:    each item in the current encoding, followed by the
//     encoding's null terminator; UTF-16-with-BOM items each carry
//     their own BOM
//   - binary:  the buffer's bytes, verbatim
//
// Text and binary fields consume the reader's entire remaining budget;
// embedded zero bytes are legal binary content.

// Render serializes the field's current state to w. Render never mutates
// the field; writer failures propagate to the caller unchanged.
func (f *Field) Render(w *binary.Writer) error {
	switch f.kind {
	case KindInteger:
		return binary.WriteValue[uint32](w, f.integer)

	case KindASCIIText, KindUnicodeText:
		for _, item := range f.items {
			data, _, err := textenc.Encode(item, f.enc)
			if err != nil {
				return err
			}
			if err := w.WriteBytes(data); err != nil {
				return err
			}
			if err := w.WriteBytes(f.enc.Terminator()); err != nil {
				return err
			}
		}
		return nil

	case KindBinary:
		return w.WriteBytes(f.data)

	default:
		return &WrongKindError{Op: "Render", Kind: f.kind}
	}
}

// Parse replaces the field's entire content by decoding r according to the
// field's declared kind and current encoding.
//
// Malformed or truncated input returns *MalformedInputError and resets the
// content to the kind's empty state; identity, kind, and encoding survive.
// Collaborator failures return *IOError. Any attempted parse, successful or
// not, marks the field changed.
func (f *Field) Parse(r *binary.Reader) error {
	f.markChanged()

	switch f.kind {
	case KindInteger:
		v, err := binary.ReadValue[uint32](r, "integer field")
		if err != nil {
			f.integer = 0
			return f.parseFailure(err)
		}
		f.integer = v
		return nil

	case KindASCIIText, KindUnicodeText:
		payload, err := r.ReadAll("text field")
		if err != nil {
			f.items = nil
			return f.parseFailure(err)
		}
		items, err := f.decodeItems(payload)
		if err != nil {
			f.items = nil
			return err
		}
		f.items = items
		return nil

	case KindBinary:
		b, err := r.ReadAll("binary field")
		if err != nil {
			f.data = nil
			return f.parseFailure(err)
		}
		f.data = b
		return nil

	default:
		return &WrongKindError{Op: "Parse", Kind: f.kind}
	}
}

// decodeItems splits a text payload on the encoding's terminator and
// decodes each segment. A terminator after the last item is the rendered
// form's own; one trailing empty segment is therefore not an item.
func (f *Field) decodeItems(payload []byte) ([]string, error) {
	segments := textenc.SplitItems(payload, f.enc)
	if n := len(segments); n > 0 && len(segments[n-1]) == 0 {
		segments = segments[:n-1]
	}

	items := make([]string, 0, len(segments))
	for _, seg := range segments {
		s, err := textenc.Decode(seg, f.enc)
		if err != nil {
			return nil, &MalformedInputError{Kind: f.kind, Encoding: f.enc, Reason: err.Error()}
		}
		items = append(items, s)
	}
	return items, nil
}

// parseFailure classifies a reader error: truncation is malformed input,
// anything else is a collaborator I/O failure propagated unchanged.
func (f *Field) parseFailure(err error) error {
	var trunc *binary.TruncatedError
	if errors.As(err, &trunc) {
		return &MalformedInputError{Kind: f.kind, Encoding: f.enc, Reason: trunc.Error()}
	}
	return &IOError{Op: "parse", Err: err}
}
