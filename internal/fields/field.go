// Package fields implements the typed field engine at the heart of an ID3v2
// frame: a tagged variant over integer, narrow text list, wide text list,
// and binary payload, with a uniform operation contract.
package fields

import (
	"slices"

	"github.com/simonhull/id3field/internal/textenc"
)

// integerWireSize is the rendered width of an integer field, in bytes.
const integerWireSize = 4

// Field is a single typed value within a tag frame.
//
// A Field is constructed with a fixed identity and kind; exactly one of the
// integer value, the text item list, or the binary buffer is active,
// selected by the kind. Operations belonging to another kind fail with
// *WrongKindError and leave the field unmodified.
//
// Text is held internally as UTF-8 Go strings regardless of the field's
// current encoding; the encoding governs wire layout, character accounting,
// and the raw accessors. Narrowing the encoding degrades stored items (see
// SetEncoding).
//
// A Field is exclusively owned by one frame at a time and is not safe for
// unsynchronized concurrent mutation.
type Field struct {
	id    ID
	kind  Kind
	enc   textenc.Encoding
	scope VersionRange

	items   []string
	integer uint32
	data    []byte

	changed bool
	cache   rawCache
}

// rawCache memoizes the cross-encoding views served by RawText and
// RawUnicodeText. Any mutating call drops it.
type rawCache struct {
	latin1      []byte
	latin1Lossy bool
	latin1OK    bool
	utf16       []byte
	utf16OK     bool
}

// Option configures a Field at construction.
type Option func(*Field)

// WithEncoding sets the initial text encoding. It is ignored for
// non-encodable kinds and for encodings outside the kind's capability.
func WithEncoding(enc textenc.Encoding) Option {
	return func(f *Field) {
		if f.kind.text() && f.supportsEncoding(enc) {
			f.enc = enc
		}
	}
}

// WithScope declares the tag-spec versions the field applies to.
// Until == VersionUnknown leaves the range open-ended.
func WithScope(since, until Version) Option {
	return func(f *Field) {
		f.scope = VersionRange{Since: since, Until: until}
	}
}

// New creates a Field of the given identity and kind.
//
// ASCII text fields default to ISO-8859-1; Unicode text fields default to
// UTF-16 with BOM. A field constructed without WithScope reports
// out-of-scope for every version until its owner declares one.
func New(id ID, kind Kind, opts ...Option) *Field {
	f := &Field{id: id, kind: kind}
	if kind == KindUnicodeText {
		f.enc = textenc.UTF16
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID returns the field's identity.
func (f *Field) ID() ID {
	return f.id
}

// Kind returns the field's variant tag.
func (f *Field) Kind() Kind {
	return f.kind
}

// IsEncodable reports whether the field kind carries a text encoding at all.
func (f *Field) IsEncodable() bool {
	return f.kind.text()
}

// Encoding returns the field's current text encoding. Only meaningful for
// text kinds.
func (f *Field) Encoding() textenc.Encoding {
	return f.enc
}

// supportsEncoding reports whether enc is within the field's declared
// capability: ASCII fields are narrow-only, Unicode fields accept all four
// encodings.
func (f *Field) supportsEncoding(enc textenc.Encoding) bool {
	if !enc.Valid() {
		return false
	}
	if f.kind == KindASCIIText {
		return enc == textenc.Latin1
	}
	return true
}

// SetEncoding changes the field's stored encoding, eagerly converting all
// current items. Narrowing to ISO-8859-1 substitutes the replacement byte
// for unmappable characters; lossy reports whether any item degraded.
//
// Returns *WrongKindError for non-encodable kinds and
// *UnsupportedEncodingError when enc is outside the field's capability.
func (f *Field) SetEncoding(enc textenc.Encoding) (lossy bool, err error) {
	if !f.IsEncodable() {
		return false, &WrongKindError{Op: "SetEncoding", Kind: f.kind}
	}
	if !f.supportsEncoding(enc) {
		return false, &UnsupportedEncodingError{Encoding: enc, Kind: f.kind}
	}
	if enc == f.enc {
		return false, nil
	}

	if !enc.Wide() {
		for i, item := range f.items {
			narrowed, itemLossy := textenc.Narrow(item)
			f.items[i] = narrowed
			lossy = lossy || itemLossy
		}
	}

	f.enc = enc
	f.markChanged()
	return lossy, nil
}

// InScope reports whether the field applies under the given tag-spec
// version. A field with no declared scope never applies (fail-closed).
func (f *Field) InScope(v Version) bool {
	return f.scope.Contains(v)
}

// HasChanged reports whether the field has been mutated since construction
// or since the owner last called ClearChanged. The engine never clears the
// flag on its own; Render in particular leaves it untouched.
func (f *Field) HasChanged() bool {
	return f.changed
}

// ClearChanged marks the field's current state as consumed by its owner.
func (f *Field) ClearChanged() {
	f.changed = false
}

// Clear resets the field to its kind's empty state: zero for integers, no
// items for text, an empty buffer for binary. The encoding is kept.
func (f *Field) Clear() {
	f.items = nil
	f.integer = 0
	f.data = nil
	f.markChanged()
}

// Size returns the field's logical size: the rendered byte width for
// integers, the character count across all items for text, and the byte
// length for binary.
func (f *Field) Size() int {
	switch f.kind {
	case KindInteger:
		return integerWireSize
	case KindASCIIText, KindUnicodeText:
		n := 0
		for _, item := range f.items {
			n += textenc.Units(item, f.enc)
		}
		return n
	case KindBinary:
		return len(f.data)
	default:
		return 0
	}
}

// BinSize returns the exact number of bytes Render would emit for the
// field's current state and encoding.
func (f *Field) BinSize() int {
	switch f.kind {
	case KindInteger:
		return integerWireSize
	case KindASCIIText, KindUnicodeText:
		n := 0
		for _, item := range f.items {
			n += textenc.EncodedLen(item, f.enc) + f.enc.TerminatorSize()
		}
		return n
	case KindBinary:
		return len(f.data)
	default:
		return 0
	}
}

// NumTextItems returns the number of items in the text item list. It is 0,
// not an error, for non-text kinds.
func (f *Field) NumTextItems() int {
	return len(f.items)
}

// CopyFrom replaces the field's content with a deep copy of other's.
// Both fields must be of the same kind; identity and scope are not copied.
func (f *Field) CopyFrom(other *Field) error {
	if f.kind != other.kind {
		return &WrongKindError{Op: "CopyFrom", Kind: other.kind}
	}
	f.enc = other.enc
	f.items = slices.Clone(other.items)
	f.integer = other.integer
	f.data = slices.Clone(other.data)
	f.markChanged()
	return nil
}

// markChanged flags a mutation and drops any cached cross-encoding views.
func (f *Field) markChanged() {
	f.changed = true
	f.cache = rawCache{}
}
