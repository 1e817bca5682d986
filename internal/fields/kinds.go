package fields

// Kind is the variant tag of a Field: it selects which operation group the
// field supports and never changes after construction.
type Kind int

const (
	// KindInteger holds a single unsigned 32-bit value.
	KindInteger Kind = iota
	// KindASCIIText holds an ordered list of narrow (ISO-8859-1) text items.
	KindASCIIText
	// KindUnicodeText holds an ordered list of wide (UTF-16/UTF-8) text items.
	KindUnicodeText
	// KindBinary holds an opaque byte buffer.
	KindBinary
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindASCIIText:
		return "ascii text"
	case KindUnicodeText:
		return "unicode text"
	case KindBinary:
		return "binary"
	default:
		return "unknown kind"
	}
}

// text reports whether the kind carries a text item list.
func (k Kind) text() bool {
	return k == KindASCIIText || k == KindUnicodeText
}

// ID identifies which slot of a frame a field occupies.
type ID int

const (
	// IDNone is the zero, unassigned identity.
	IDNone ID = iota
	// IDTextEnc is the text encoding byte preceding a frame's text data.
	IDTextEnc
	// IDText is a frame's main text content.
	IDText
	// IDURL is a URL string.
	IDURL
	// IDData is an opaque data blob, such as an attached image.
	IDData
	// IDDescription is a content description string.
	IDDescription
	// IDOwner is an owner identifier string.
	IDOwner
	// IDEmail is an email address string.
	IDEmail
	// IDRating is a popularity rating value.
	IDRating
	// IDFilename is an embedded object's filename.
	IDFilename
	// IDLanguage is a three-letter language code.
	IDLanguage
	// IDPictureType is an attached picture's type value.
	IDPictureType
	// IDImageFormat is an image format string (ID3v2.2 pictures).
	IDImageFormat
	// IDMimeType is a MIME type string.
	IDMimeType
	// IDCounter is a play counter value.
	IDCounter
	// IDSymbol is a registered symbol value.
	IDSymbol
	// IDVolumeAdj is a relative volume adjustment value.
	IDVolumeAdj
)

// String returns a short name for the field identity.
func (id ID) String() string {
	switch id {
	case IDTextEnc:
		return "textenc"
	case IDText:
		return "text"
	case IDURL:
		return "url"
	case IDData:
		return "data"
	case IDDescription:
		return "description"
	case IDOwner:
		return "owner"
	case IDEmail:
		return "email"
	case IDRating:
		return "rating"
	case IDFilename:
		return "filename"
	case IDLanguage:
		return "language"
	case IDPictureType:
		return "picturetype"
	case IDImageFormat:
		return "imageformat"
	case IDMimeType:
		return "mimetype"
	case IDCounter:
		return "counter"
	case IDSymbol:
		return "symbol"
	case IDVolumeAdj:
		return "volumeadj"
	default:
		return "none"
	}
}
