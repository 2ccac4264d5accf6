package wasm

import "testing"

func TestIsValidHeader(t *testing.T) {
	valid := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if !IsValidHeader(valid) {
		t.Error("valid header rejected")
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte{0x00, 0x61, 0x73}},
		{"seven bytes", valid[:7]},
		{"wrong magic", []byte{0x00, 0x61, 0x73, 0x6e, 0x01, 0x00, 0x00, 0x00}},
		{"wrong version", []byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		if IsValidHeader(tt.data) {
			t.Errorf("%s: header accepted", tt.name)
		}
	}
}

func TestValidateHeader(t *testing.T) {
	if err := ValidateHeader([]byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x00, 0x00, 0x00}); err != ErrInvalidMagic {
		t.Errorf("wrong magic: %v", err)
	}
	if err := ValidateHeader([]byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}); err != ErrInvalidVersion {
		t.Errorf("wrong version: %v", err)
	}
}

func TestParseSections(t *testing.T) {
	m := &Module{
		Types:    []FuncType{{}},
		Funcs:    []uint32{0},
		Memories: []Limits{{Min: 1}},
		Exports:  []Export{{Name: "memory", Kind: KindMemory, Index: 0}},
		Code:     []FuncBody{{Expr: Body()}},
	}
	data := m.Encode()

	sections, err := ParseSections(data)
	if err != nil {
		t.Fatalf("ParseSections: %v", err)
	}
	if len(sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(sections))
	}

	for _, s := range sections {
		if s.Offset+int(s.Size) > len(data) {
			t.Errorf("section %s range [%d, %d) exceeds buffer", s.Name, s.Offset, s.Offset+int(s.Size))
		}
		if s.Name == "unknown" {
			t.Errorf("section id %d has no name", s.ID)
		}
	}

	if sections[2].ID != SectionMemory || sections[2].Name != "memory" {
		t.Errorf("section 2 = %+v, want memory", sections[2])
	}
}

func TestParseSectionsRejectsBadHeader(t *testing.T) {
	if _, err := ParseSections([]byte{0x01, 0x02}); err != ErrInvalidMagic {
		t.Errorf("bad header: %v", err)
	}
}

func TestParseSectionsTrustsDeclaredSize(t *testing.T) {
	// Header plus a section claiming 100 content bytes with none present.
	data := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, SectionCustom, 100}
	sections, err := ParseSections(data)
	if err != nil {
		t.Fatalf("ParseSections: %v", err)
	}
	if len(sections) != 1 || sections[0].Size != 100 {
		t.Errorf("sections = %+v, want one custom section of size 100", sections)
	}
}

func TestFindSectionMissing(t *testing.T) {
	data := (&Module{Memories: []Limits{{Min: 1}}}).Encode()
	_, ok, err := FindSection(data, SectionCode)
	if err != nil {
		t.Fatalf("FindSection: %v", err)
	}
	if ok {
		t.Error("found code section in memory-only module")
	}
}
