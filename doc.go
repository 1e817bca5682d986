// Package id3field provides the typed field engine underneath ID3v2-style
// tag frames: a single polymorphic Field that can hold an integer, an
// ordered list of narrow (ISO-8859-1) text items, an ordered list of wide
// (UTF-16/UTF-8) text items, or an opaque binary blob.
//
// # Quick Start
//
// Creating a text field and reading it back:
//
//	f := id3field.NewUnicodeText(id3field.IDText)
//	f.SetText("Paranoid Android")
//	title, _ := f.Text()
//
// Serializing and restoring a field:
//
//	var buf bytes.Buffer
//	f.Render(id3field.NewWriter(&buf))
//
//	g := id3field.NewUnicodeText(id3field.IDText)
//	if err := g.Parse(id3field.NewBytesReader(buf.Bytes())); err != nil {
//		// malformed input: g's content is reset, its kind survives
//	}
//
// # Kinds and Contracts
//
// A Field's kind is fixed at construction and selects which operations are
// legal. Calling an operation outside the kind's group returns
// *WrongKindError and leaves the field unmodified; nothing is silently
// coerced. The four kinds:
//
//   - KindInteger: SetInteger, Integer
//   - KindASCIIText, KindUnicodeText: SetText, AddText, Text, TextItem,
//     CopyText, RawText, RawUnicodeText
//   - KindBinary: SetBinary, Binary, CopyBinary, FromFile, ToFile
//
// # Encodings
//
// Text fields carry a current encoding. Widening a field's text never loses
// data; narrowing to ISO-8859-1 substitutes '?' for unmappable characters
// and reports the loss as a returned flag, never as an error:
//
//	f := id3field.NewUnicodeText(id3field.IDText)
//	f.AddText("café ☕")
//	lossy, _ := f.SetEncoding(id3field.Latin1) // lossy == true
//
// # Frames and Versions
//
// The frame metadata catalog maps a frame identity to its ordered field
// layout and the tag-spec versions it applies to. FrameFields builds the
// declared fields for a frame; Field.InScope consults the field's version
// scope, failing closed for identities the catalog does not know.
//
// # Errors
//
// The library distinguishes caller bugs (*WrongKindError, *IndexError,
// *UnsupportedEncodingError), bad data (*MalformedInputError), and
// collaborator failures (*IOError, which unwraps to the underlying error).
// Parse failures are recoverable: the field stays internally consistent and
// sibling fields are never affected.
package id3field
