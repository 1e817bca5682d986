// Package textenc converts between the text encodings an ID3v2 field can
// carry: ISO-8859-1, UTF-16 with BOM, UTF-16BE, and UTF-8.
//
// Field text is held internally as UTF-8 Go strings; this package handles
// the wire representations. Narrowing to ISO-8859-1 never fails: runes
// outside the character set degrade to a replacement byte and the
// conversion reports that it was lossy.
package textenc

// Encoding identifies a text encoding. The numeric values match the ID3v2
// text encoding byte.
type Encoding byte

const (
	// Latin1 is ISO-8859-1, the narrow single-byte encoding.
	Latin1 Encoding = 0
	// UTF16 is UTF-16 with a byte order mark.
	UTF16 Encoding = 1
	// UTF16BE is UTF-16 big-endian without a byte order mark.
	UTF16BE Encoding = 2
	// UTF8 is UTF-8.
	UTF8 Encoding = 3
)

// Replacement is the byte substituted for runes that have no ISO-8859-1
// equivalent during a narrowing conversion.
const Replacement = '?'

// String returns the encoding's conventional name.
func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return "unknown encoding"
	}
}

// Valid reports whether e is one of the four supported encodings.
func (e Encoding) Valid() bool {
	return e <= UTF8
}

// Wide reports whether e is a multi-byte (wide) encoding. Narrowing text to
// a non-wide encoding may lose data; widening never does.
func (e Encoding) Wide() bool {
	return e != Latin1
}

// TerminatorSize returns the byte length of a null terminator in e.
func (e Encoding) TerminatorSize() int {
	switch e {
	case UTF16, UTF16BE:
		return 2
	default:
		return 1
	}
}

// Terminator returns the null terminator bytes for e.
func (e Encoding) Terminator() []byte {
	if e.TerminatorSize() == 2 {
		return []byte{0, 0}
	}
	return []byte{0}
}
