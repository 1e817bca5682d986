package id3field

import (
	"github.com/simonhull/id3field/internal/fields"
	"github.com/simonhull/id3field/internal/textenc"
)

// Field is a single typed value within a tag frame.
// See the package documentation for the operation contract.
type Field = fields.Field

// Kind is the variant tag of a Field.
type Kind = fields.Kind

// Field kinds.
const (
	KindInteger     = fields.KindInteger
	KindASCIIText   = fields.KindASCIIText
	KindUnicodeText = fields.KindUnicodeText
	KindBinary      = fields.KindBinary
)

// ID identifies which slot of a frame a field occupies.
type ID = fields.ID

// Field identities.
const (
	IDNone        = fields.IDNone
	IDTextEnc     = fields.IDTextEnc
	IDText        = fields.IDText
	IDURL         = fields.IDURL
	IDData        = fields.IDData
	IDDescription = fields.IDDescription
	IDOwner       = fields.IDOwner
	IDEmail       = fields.IDEmail
	IDRating      = fields.IDRating
	IDFilename    = fields.IDFilename
	IDLanguage    = fields.IDLanguage
	IDPictureType = fields.IDPictureType
	IDImageFormat = fields.IDImageFormat
	IDMimeType    = fields.IDMimeType
	IDCounter     = fields.IDCounter
	IDSymbol      = fields.IDSymbol
	IDVolumeAdj   = fields.IDVolumeAdj
)

// Encoding identifies a text encoding; values match the ID3v2 text encoding
// byte.
type Encoding = textenc.Encoding

// Text encodings.
const (
	Latin1  = textenc.Latin1
	UTF16   = textenc.UTF16
	UTF16BE = textenc.UTF16BE
	UTF8    = textenc.UTF8
)

// Version enumerates the ID3v2 tag specification revisions.
type Version = fields.Version

// Tag-spec versions.
const (
	VersionUnknown = fields.VersionUnknown
	V2_2           = fields.V2_2
	V2_3           = fields.V2_3
	V2_4           = fields.V2_4
)

// Option configures a Field at construction.
type Option = fields.Option

// WithEncoding sets a text field's initial encoding.
func WithEncoding(enc Encoding) Option {
	return fields.WithEncoding(enc)
}

// WithScope declares the tag-spec versions the field applies to.
// Until == VersionUnknown leaves the range open-ended.
func WithScope(since, until Version) Option {
	return fields.WithScope(since, until)
}

// New creates a Field of the given identity and kind.
func New(id ID, kind Kind, opts ...Option) *Field {
	return fields.New(id, kind, opts...)
}

// NewInteger creates an integer field.
func NewInteger(id ID, opts ...Option) *Field {
	return fields.New(id, KindInteger, opts...)
}

// NewText creates a narrow (ISO-8859-1) text field.
func NewText(id ID, opts ...Option) *Field {
	return fields.New(id, KindASCIIText, opts...)
}

// NewUnicodeText creates a wide text field, defaulting to UTF-16 with BOM.
func NewUnicodeText(id ID, opts ...Option) *Field {
	return fields.New(id, KindUnicodeText, opts...)
}

// NewBinary creates a binary field.
func NewBinary(id ID, opts ...Option) *Field {
	return fields.New(id, KindBinary, opts...)
}
