package wasm

import (
	"bytes"
	"testing"
)

func TestEncodeEmptyModule(t *testing.T) {
	m := &Module{}
	got := m.Encode()
	want := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("empty module = % x, want % x", got, want)
	}
}

func TestEncodeMemoryModule(t *testing.T) {
	m := &Module{
		Memories: []Limits{{Min: 1, Max: 4, HasMax: true}},
		Exports:  []Export{{Name: "memory", Kind: KindMemory, Index: 0}},
	}
	data := m.Encode()

	if !IsValidHeader(data) {
		t.Fatal("encoded module has invalid header")
	}

	want := []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		SectionMemory, 0x04, 0x01, 0x01, 0x01, 0x04,
		SectionExport, 0x0a, 0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', KindMemory, 0x00,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("module = % x, want % x", data, want)
	}
}

// TestEncodeCallModule synthesizes a module importing a host function and
// exporting a function that calls it with two constants.
func TestEncodeCallModule(t *testing.T) {
	m := &Module{
		Types: []FuncType{
			{Params: []ValType{ValI32, ValI32}},
			{},
		},
		Imports: []Import{
			{Module: "env", Name: "_panic", Kind: KindFunc, TypeIdx: 0},
		},
		Funcs:    []uint32{1},
		Memories: []Limits{{Min: 1}},
		Exports: []Export{
			{Name: "memory", Kind: KindMemory, Index: 0},
			{Name: "doPanic", Kind: KindFunc, Index: 1},
		},
		Code: []FuncBody{
			{Expr: Body(I32Const(100), I32Const(10), Call(0))},
		},
	}
	data := m.Encode()

	sections, err := ParseSections(data)
	if err != nil {
		t.Fatalf("ParseSections: %v", err)
	}
	wantOrder := []byte{SectionType, SectionImport, SectionFunction, SectionMemory, SectionExport, SectionCode}
	if len(sections) != len(wantOrder) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantOrder))
	}
	for i, s := range sections {
		if s.ID != wantOrder[i] {
			t.Errorf("section %d = %s, want %s", i, s.Name, SectionName(wantOrder[i]))
		}
	}

	// Function body: locals count, i32.const 100, i32.const 10, call 0, end.
	wantBody := []byte{0x00, OpI32Const, 0xe4, 0x00, OpI32Const, 0x0a, OpCall, 0x00, OpEnd}
	if !bytes.Contains(data, wantBody) {
		t.Errorf("encoded module missing function body % x", wantBody)
	}
}

func TestEncodeDataSegment(t *testing.T) {
	m := &Module{
		Memories: []Limits{{Min: 1}},
		Data:     []DataSegment{{Offset: 16, Init: []byte("hi")}},
	}
	data := m.Encode()

	sec, ok, err := FindSection(data, SectionData)
	if err != nil || !ok {
		t.Fatalf("FindSection(data) = %v, %v", ok, err)
	}
	content := data[sec.Offset : sec.Offset+int(sec.Size)]
	want := []byte{0x01, 0x00, OpI32Const, 0x10, OpEnd, 0x02, 'h', 'i'}
	if !bytes.Equal(content, want) {
		t.Errorf("data section = % x, want % x", content, want)
	}
}

func TestBodyInstructionEncoding(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"i32.const", I32Const(-1), []byte{OpI32Const, 0x7f}},
		{"call", Call(300), []byte{OpCall, 0xac, 0x02}},
		{"local.get", LocalGet(2), []byte{OpLocalGet, 0x02}},
	}
	for _, tt := range tests {
		if !bytes.Equal(tt.got, tt.want) {
			t.Errorf("%s = % x, want % x", tt.name, tt.got, tt.want)
		}
	}
}
