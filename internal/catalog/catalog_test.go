package catalog

import (
	"slices"
	"testing"

	"github.com/simonhull/id3field/internal/fields"
)

func TestLookup_TextFrame(t *testing.T) {
	def, ok := Lookup("TIT2")
	if !ok {
		t.Fatal("TIT2 should be cataloged")
	}
	if def.ShortID != "TT2" {
		t.Errorf("ShortID = %q, want %q", def.ShortID, "TT2")
	}
	if len(def.Fields) != 2 {
		t.Fatalf("TIT2 declares %d fields, want 2", len(def.Fields))
	}
	if def.Fields[0].ID != fields.IDTextEnc || def.Fields[0].Kind != fields.KindInteger {
		t.Errorf("field 0 = %s/%s, want textenc/integer", def.Fields[0].ID, def.Fields[0].Kind)
	}
	if def.Fields[1].ID != fields.IDText || def.Fields[1].Kind != fields.KindUnicodeText {
		t.Errorf("field 1 = %s/%s, want text/unicode", def.Fields[1].ID, def.Fields[1].Kind)
	}
}

func TestLookup_PictureFrame(t *testing.T) {
	def, ok := Lookup("APIC")
	if !ok {
		t.Fatal("APIC should be cataloged")
	}

	kinds := make([]fields.Kind, 0, len(def.Fields))
	for _, fd := range def.Fields {
		kinds = append(kinds, fd.Kind)
	}
	want := []fields.Kind{
		fields.KindInteger,
		fields.KindASCIIText,
		fields.KindInteger,
		fields.KindUnicodeText,
		fields.KindBinary,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("APIC field kinds = %v, want %v", kinds, want)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("ZZZZ"); ok {
		t.Error("unknown frame should not resolve")
	}
}

func TestInScope(t *testing.T) {
	tests := []struct {
		frame   FrameID
		version fields.Version
		want    bool
	}{
		// Default-applicable: no declared range.
		{"TIT2", fields.V2_2, true},
		{"TIT2", fields.V2_3, true},
		{"TIT2", fields.V2_4, true},

		// Closed range [2.2, 2.3]: TYER was replaced by TDRC in 2.4.
		{"TYER", fields.V2_2, true},
		{"TYER", fields.V2_3, true},
		{"TYER", fields.V2_4, false},

		// Open-ended from 2.4.
		{"TDRC", fields.V2_2, false},
		{"TDRC", fields.V2_3, false},
		{"TDRC", fields.V2_4, true},

		// Open-ended from 2.3.
		{"APIC", fields.V2_2, false},
		{"APIC", fields.V2_3, true},
		{"APIC", fields.V2_4, true},

		// Single-version range.
		{"PIC", fields.V2_2, true},
		{"PIC", fields.V2_3, false},

		// Unknown identity fails closed, never wildcards.
		{"ZZZZ", fields.V2_2, false},
		{"ZZZZ", fields.V2_3, false},
		{"ZZZZ", fields.V2_4, false},

		// An unknown version matches nothing.
		{"TIT2", fields.VersionUnknown, false},
	}

	for _, tt := range tests {
		if got := InScope(tt.frame, tt.version); got != tt.want {
			t.Errorf("InScope(%s, %s) = %v, want %v", tt.frame, tt.version, got, tt.want)
		}
	}
}

func TestInScope_Monotonic(t *testing.T) {
	// If a frame is in scope at both ends of a closed range, it is in scope
	// at every version in between.
	all := []fields.Version{fields.V2_2, fields.V2_3, fields.V2_4}

	for _, id := range Frames() {
		def, _ := Lookup(id)
		for _, v := range all {
			inRange := def.Scope.Contains(v)
			if got := InScope(id, v); got != inRange {
				t.Errorf("InScope(%s, %s) = %v, disagrees with declared range %+v",
					id, v, got, def.Scope)
			}
		}
	}
}

func TestFrames_SortedAndComplete(t *testing.T) {
	ids := Frames()
	if !slices.IsSorted(ids) {
		t.Error("Frames() must be sorted")
	}
	for _, want := range []FrameID{"TIT2", "APIC", "COMM", "PCNT", "UFID"} {
		if !slices.Contains(ids, want) {
			t.Errorf("Frames() missing %s", want)
		}
	}
}

func TestDecode_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "unknown kind",
			toml: `[[frame]]
id = "XXXX"
fields = [{ id = "text", kind = "floating" }]`,
		},
		{
			name: "unknown field id",
			toml: `[[frame]]
id = "XXXX"
fields = [{ id = "bogus", kind = "binary" }]`,
		},
		{
			name: "unknown version",
			toml: `[[frame]]
id = "XXXX"
since = "9.9"
fields = [{ id = "text", kind = "unicode" }]`,
		},
		{
			name: "no fields",
			toml: `[[frame]]
id = "XXXX"`,
		},
		{
			name: "duplicate frame",
			toml: `[[frame]]
id = "XXXX"
fields = [{ id = "text", kind = "unicode" }]
[[frame]]
id = "XXXX"
fields = [{ id = "text", kind = "unicode" }]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decode([]byte(tt.toml)); err == nil {
				t.Error("decode should reject the table")
			}
		})
	}
}

func TestEmbeddedTableLoads(t *testing.T) {
	// The embedded table must decode; load() panics otherwise.
	table, err := decode(framesTOML)
	if err != nil {
		t.Fatalf("embedded frame table does not decode: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("embedded frame table is empty")
	}
}
