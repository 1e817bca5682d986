package id3field

import (
	"github.com/simonhull/id3field/internal/catalog"
	"github.com/simonhull/id3field/internal/fields"
)

// FrameID is a frame identifier in its four-character ID3v2.3/2.4 form
// ("TIT2", "APIC").
type FrameID = catalog.FrameID

// FrameDef describes a cataloged frame: identifiers, ordered field layout,
// version scope.
type FrameDef = catalog.FrameDef

// FieldDef declares one field slot of a frame.
type FieldDef = catalog.FieldDef

// Frames returns every frame identity in the metadata catalog, sorted.
func Frames() []FrameID {
	return catalog.Frames()
}

// LookupFrame returns the catalog definition for a frame identity.
func LookupFrame(id FrameID) (FrameDef, bool) {
	return catalog.Lookup(id)
}

// FrameInScope reports whether a frame applies under the given tag-spec
// version. Identities the catalog does not know never apply.
func FrameInScope(id FrameID, v Version) bool {
	return catalog.InScope(id, v)
}

// FrameFields builds the ordered list of fields a frame declares, each
// carrying the frame's version scope and its kind's default encoding.
//
// Returns *UnknownFrameError for identities not in the catalog.
func FrameFields(id FrameID) ([]*Field, error) {
	def, ok := catalog.Lookup(id)
	if !ok {
		return nil, &UnknownFrameError{Frame: id}
	}

	list := make([]*Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		list = append(list, fields.New(fd.ID, fd.Kind,
			fields.WithScope(def.Scope.Since, def.Scope.Until)))
	}
	return list, nil
}
