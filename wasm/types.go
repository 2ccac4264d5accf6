package wasm

// Module is a buildable WebAssembly module. Fields map one-to-one onto binary
// sections; empty fields produce no section.
type Module struct {
	Types    []FuncType
	Imports  []Import
	Funcs    []uint32 // type indices for declared functions
	Memories []Limits
	Exports  []Export
	Code     []FuncBody
	Data     []DataSegment
}

// FuncType represents a WebAssembly function signature with parameter and
// result types.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Import represents an imported item.
type Import struct {
	Module string
	Name   string
	Kind   byte
	// TypeIdx is the type index for function imports.
	TypeIdx uint32
	// Memory is the memory type for memory imports.
	Memory *Limits
}

// Limits represents memory limits in pages. Max is ignored unless HasMax.
type Limits struct {
	Min    uint32
	Max    uint32
	HasMax bool
}

// Export represents an exported item.
type Export struct {
	Name  string
	Kind  byte
	Index uint32
}

// FuncBody is a function body: declared locals followed by an instruction
// stream ending with OpEnd.
type FuncBody struct {
	Locals []LocalDecl
	Expr   []byte
}

// LocalDecl declares Count consecutive locals of the same type.
type LocalDecl struct {
	Count uint32
	Type  ValType
}

// DataSegment is an active data segment placed at a constant i32 offset in
// memory 0.
type DataSegment struct {
	Offset uint32
	Init   []byte
}

// SectionInfo describes one section located by ParseSections. Size is the
// declared content length; Offset is the content's byte offset in the module.
type SectionInfo struct {
	ID     byte
	Name   string
	Offset int
	Size   uint32
}
