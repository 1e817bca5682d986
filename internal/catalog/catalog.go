// Package catalog holds the static frame metadata table: which fields each
// frame declares, in what order, and the tag-spec versions the frame
// applies to.
//
// The table is embedded and decoded once at first use. It is read-only;
// nothing in the field engine mutates it.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/simonhull/id3field/internal/fields"
)

//go:embed frames.toml
var framesTOML []byte

// FrameID is a frame identifier: the four-character ID3v2.3/2.4 form
// ("TIT2", "APIC").
type FrameID string

// FieldDef declares one field slot of a frame.
type FieldDef struct {
	ID   fields.ID
	Kind fields.Kind
}

// FrameDef describes a frame: its identifiers, its ordered field layout,
// and its version scope.
type FrameDef struct {
	ID          FrameID
	ShortID     string // three-character ID3v2.2 form, empty if none
	Description string
	Fields      []FieldDef
	Scope       fields.VersionRange
}

// Raw shapes for TOML decoding.
type frameTable struct {
	Frames []frameEntry `toml:"frame"`
}

type frameEntry struct {
	ID          string       `toml:"id"`
	Short       string       `toml:"short"`
	Description string       `toml:"description"`
	Since       string       `toml:"since"`
	Until       string       `toml:"until"`
	Fields      []fieldEntry `toml:"fields"`
}

type fieldEntry struct {
	ID   string `toml:"id"`
	Kind string `toml:"kind"`
}

var load = sync.OnceValue(func() map[FrameID]FrameDef {
	table, err := decode(framesTOML)
	if err != nil {
		// The table is embedded: failing to decode it is a build defect,
		// caught by this package's tests.
		panic(fmt.Sprintf("catalog: embedded frame table: %v", err))
	}
	return table
})

func decode(data []byte) (map[FrameID]FrameDef, error) {
	var raw frameTable
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	table := make(map[FrameID]FrameDef, len(raw.Frames))
	for _, entry := range raw.Frames {
		def, err := entry.frameDef()
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", entry.ID, err)
		}
		if _, dup := table[def.ID]; dup {
			return nil, fmt.Errorf("frame %q: duplicate entry", entry.ID)
		}
		table[def.ID] = def
	}
	return table, nil
}

func (e frameEntry) frameDef() (FrameDef, error) {
	if e.ID == "" {
		return FrameDef{}, fmt.Errorf("missing id")
	}
	if len(e.Fields) == 0 {
		return FrameDef{}, fmt.Errorf("no fields declared")
	}

	scope, err := parseScope(e.Since, e.Until)
	if err != nil {
		return FrameDef{}, err
	}

	defs := make([]FieldDef, 0, len(e.Fields))
	for _, fe := range e.Fields {
		id, err := parseFieldID(fe.ID)
		if err != nil {
			return FrameDef{}, err
		}
		kind, err := parseKind(fe.Kind)
		if err != nil {
			return FrameDef{}, err
		}
		defs = append(defs, FieldDef{ID: id, Kind: kind})
	}

	return FrameDef{
		ID:          FrameID(e.ID),
		ShortID:     e.Short,
		Description: e.Description,
		Fields:      defs,
		Scope:       scope,
	}, nil
}

// parseScope maps the optional since/until strings to a version range.
// Absent bounds default to the widest applicable range: a frame is
// applicable everywhere unless the table excludes it.
func parseScope(since, until string) (fields.VersionRange, error) {
	scope := fields.AllVersions()

	if since != "" {
		v, err := parseVersion(since)
		if err != nil {
			return fields.VersionRange{}, err
		}
		scope.Since = v
	}
	if until != "" {
		v, err := parseVersion(until)
		if err != nil {
			return fields.VersionRange{}, err
		}
		scope.Until = v
	} else if since != "" {
		// Explicit since with no until is open-ended.
		scope.Until = fields.VersionUnknown
	}

	return scope, nil
}

func parseVersion(s string) (fields.Version, error) {
	switch s {
	case "2.2":
		return fields.V2_2, nil
	case "2.3":
		return fields.V2_3, nil
	case "2.4":
		return fields.V2_4, nil
	default:
		return fields.VersionUnknown, fmt.Errorf("unknown version %q", s)
	}
}

func parseFieldID(s string) (fields.ID, error) {
	switch s {
	case "textenc":
		return fields.IDTextEnc, nil
	case "text":
		return fields.IDText, nil
	case "url":
		return fields.IDURL, nil
	case "data":
		return fields.IDData, nil
	case "description":
		return fields.IDDescription, nil
	case "owner":
		return fields.IDOwner, nil
	case "email":
		return fields.IDEmail, nil
	case "rating":
		return fields.IDRating, nil
	case "filename":
		return fields.IDFilename, nil
	case "language":
		return fields.IDLanguage, nil
	case "picturetype":
		return fields.IDPictureType, nil
	case "imageformat":
		return fields.IDImageFormat, nil
	case "mimetype":
		return fields.IDMimeType, nil
	case "counter":
		return fields.IDCounter, nil
	case "symbol":
		return fields.IDSymbol, nil
	case "volumeadj":
		return fields.IDVolumeAdj, nil
	default:
		return fields.IDNone, fmt.Errorf("unknown field id %q", s)
	}
}

func parseKind(s string) (fields.Kind, error) {
	switch s {
	case "integer":
		return fields.KindInteger, nil
	case "ascii":
		return fields.KindASCIIText, nil
	case "unicode":
		return fields.KindUnicodeText, nil
	case "binary":
		return fields.KindBinary, nil
	default:
		return fields.KindInteger, fmt.Errorf("unknown field kind %q", s)
	}
}

// Lookup returns the definition for a frame identity.
func Lookup(id FrameID) (FrameDef, bool) {
	def, ok := load()[id]
	return def, ok
}

// Frames returns every cataloged frame identity, sorted.
func Frames() []FrameID {
	table := load()
	ids := make([]FrameID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// InScope reports whether a frame applies under the given tag-spec version.
// An identity absent from the table never applies (fail-closed): unknown is
// not a wildcard.
func InScope(id FrameID, v fields.Version) bool {
	def, ok := Lookup(id)
	if !ok {
		return false
	}
	return def.Scope.Contains(v)
}
