package fields

// Version enumerates the ID3v2 tag specification revisions a field can be
// scoped to.
type Version int

const (
	// VersionUnknown is the zero, unrecognized version.
	VersionUnknown Version = iota
	// V2_2 is ID3v2.2.
	V2_2
	// V2_3 is ID3v2.3.
	V2_3
	// V2_4 is ID3v2.4.
	V2_4
)

// String returns the conventional version name.
func (v Version) String() string {
	switch v {
	case V2_2:
		return "ID3v2.2"
	case V2_3:
		return "ID3v2.3"
	case V2_4:
		return "ID3v2.4"
	default:
		return "unknown version"
	}
}

// VersionRange is a contiguous span of tag-spec versions.
//
// The zero range is empty and matches nothing, so a field whose scope was
// never declared reports out-of-scope (fail-closed). An open-ended range is
// expressed with Until == VersionUnknown.
type VersionRange struct {
	Since Version
	Until Version
}

// AllVersions spans every supported tag-spec version.
func AllVersions() VersionRange {
	return VersionRange{Since: V2_2, Until: V2_4}
}

// Contains reports whether v falls within the range.
func (r VersionRange) Contains(v Version) bool {
	if v == VersionUnknown || r.Since == VersionUnknown {
		return false
	}
	if v < r.Since {
		return false
	}
	if r.Until != VersionUnknown && v > r.Until {
		return false
	}
	return true
}
