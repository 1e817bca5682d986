package fields

import (
	"os"
	"slices"

	"github.com/simonhull/id3field/internal/textenc"
)

// SetInteger replaces the field's integer value.
func (f *Field) SetInteger(v uint32) error {
	if f.kind != KindInteger {
		return &WrongKindError{Op: "SetInteger", Kind: f.kind}
	}
	f.integer = v
	f.markChanged()
	return nil
}

// Integer returns the field's integer value.
func (f *Field) Integer() (uint32, error) {
	if f.kind != KindInteger {
		return 0, &WrongKindError{Op: "Integer", Kind: f.kind}
	}
	return f.integer, nil
}

// SetText replaces the entire item list with a single item, so that
// NumTextItems() == 1 afterwards even for an empty string. On a field whose
// current encoding is narrow, characters outside the narrow set degrade to
// the replacement byte immediately: stored items are always representable
// in the field's current encoding.
func (f *Field) SetText(s string) error {
	if !f.kind.text() {
		return &WrongKindError{Op: "SetText", Kind: f.kind}
	}
	f.items = []string{f.conform(s)}
	f.markChanged()
	return nil
}

// AddText appends a new item without disturbing existing ones.
func (f *Field) AddText(s string) error {
	if !f.kind.text() {
		return &WrongKindError{Op: "AddText", Kind: f.kind}
	}
	f.items = append(f.items, f.conform(s))
	f.markChanged()
	return nil
}

// conform degrades s to the field's current encoding when that encoding is
// narrow. Wide encodings represent any string.
func (f *Field) conform(s string) string {
	if f.enc.Wide() {
		return s
	}
	narrowed, _ := textenc.Narrow(s)
	return narrowed
}

// Text returns the first text item, or "" when the field holds no items.
func (f *Field) Text() (string, error) {
	if !f.kind.text() {
		return "", &WrongKindError{Op: "Text", Kind: f.kind}
	}
	if len(f.items) == 0 {
		return "", nil
	}
	return f.items[0], nil
}

// TextItem returns the item at the given position in insertion order.
func (f *Field) TextItem(i int) (string, error) {
	if !f.kind.text() {
		return "", &WrongKindError{Op: "TextItem", Kind: f.kind}
	}
	if i < 0 || i >= len(f.items) {
		return "", &IndexError{Index: i, Count: len(f.items)}
	}
	return f.items[i], nil
}

// CopyText encodes the item at position i in the field's current encoding
// and copies it into buf, truncating to len(buf). Returns the number of
// bytes written.
func (f *Field) CopyText(buf []byte, i int) (int, error) {
	item, err := f.TextItem(i)
	if err != nil {
		return 0, err
	}
	data, _, err := textenc.Encode(item, f.enc)
	if err != nil {
		return 0, err
	}
	return copy(buf, data), nil
}

// RawText returns the first item converted to the narrow encoding,
// regardless of the field's kind or current encoding. On a wide field this
// is the one place the two text kinds interoperate: the view is converted
// on demand and cached until the next mutation. lossy reports whether the
// conversion discarded characters.
//
// The returned slice is a read-only view; callers must not modify it.
func (f *Field) RawText() (data []byte, lossy bool, err error) {
	if !f.kind.text() {
		return nil, false, &WrongKindError{Op: "RawText", Kind: f.kind}
	}
	if f.cache.latin1OK {
		return f.cache.latin1, f.cache.latin1Lossy, nil
	}

	first := ""
	if len(f.items) > 0 {
		first = f.items[0]
	}
	data, lossy, err = textenc.Encode(first, textenc.Latin1)
	if err != nil {
		return nil, false, err
	}

	f.cache.latin1 = data
	f.cache.latin1Lossy = lossy
	f.cache.latin1OK = true
	return data, lossy, nil
}

// RawUnicodeText returns the first item converted to UTF-16BE, regardless
// of the field's kind or current encoding. Widening is always lossless.
// The view is cached until the next mutation and must not be modified.
func (f *Field) RawUnicodeText() ([]byte, error) {
	if !f.kind.text() {
		return nil, &WrongKindError{Op: "RawUnicodeText", Kind: f.kind}
	}
	if f.cache.utf16OK {
		return f.cache.utf16, nil
	}

	first := ""
	if len(f.items) > 0 {
		first = f.items[0]
	}
	data, _, err := textenc.Encode(first, textenc.UTF16BE)
	if err != nil {
		return nil, err
	}

	f.cache.utf16 = data
	f.cache.utf16OK = true
	return data, nil
}

// SetBinary replaces the buffer with a copy of b.
func (f *Field) SetBinary(b []byte) error {
	if f.kind != KindBinary {
		return &WrongKindError{Op: "SetBinary", Kind: f.kind}
	}
	f.data = slices.Clone(b)
	f.markChanged()
	return nil
}

// Binary returns the field's buffer. The returned slice is a read-only
// view; callers must not modify it.
func (f *Field) Binary() ([]byte, error) {
	if f.kind != KindBinary {
		return nil, &WrongKindError{Op: "Binary", Kind: f.kind}
	}
	return f.data, nil
}

// CopyBinary copies up to len(buf) bytes of the buffer into buf and returns
// the number of bytes written.
func (f *Field) CopyBinary(buf []byte) (int, error) {
	if f.kind != KindBinary {
		return 0, &WrongKindError{Op: "CopyBinary", Kind: f.kind}
	}
	return copy(buf, f.data), nil
}

// FromFile replaces the buffer with the full contents of the named file.
func (f *Field) FromFile(path string) error {
	if f.kind != KindBinary {
		return &WrongKindError{Op: "FromFile", Kind: f.kind}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}
	f.data = b
	f.markChanged()
	return nil
}

// ToFile writes the buffer's current contents to the named file.
// ToFile does not mutate the field.
func (f *Field) ToFile(path string) error {
	if f.kind != KindBinary {
		return &WrongKindError{Op: "ToFile", Kind: f.kind}
	}
	if err := os.WriteFile(path, f.data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
